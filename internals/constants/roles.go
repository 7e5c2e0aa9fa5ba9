package constants

// Global roles
const (
	RoleOwner = "owner"
	RoleUser  = "user"
)

// Per-school membership roles
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Membership status on school_members
const (
	MemberStatusActive  = "active"
	MemberStatusRemoved = "removed"
)

// Join request status
const (
	JoinRequestPending  = "pending"
	JoinRequestApproved = "approved"
	JoinRequestRejected = "rejected"
)
