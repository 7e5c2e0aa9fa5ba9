package dto

import (
	"time"

	"alumnihub_backend/internals/features/community/posts/model"

	"github.com/google/uuid"
)

type PostCreateRequest struct {
	PostTitle     string     `json:"post_title" validate:"required,max=255"`
	PostContent   string     `json:"post_content"`
	PostType      string     `json:"post_type" validate:"omitempty,oneof=general event opportunity"`
	PostEventDate *time.Time `json:"post_event_date"`
}

type PostUpdateRequest struct {
	PostTitle     *string    `json:"post_title" validate:"omitempty,max=255"`
	PostContent   *string    `json:"post_content"`
	PostType      *string    `json:"post_type" validate:"omitempty,oneof=general event opportunity"`
	PostEventDate *time.Time `json:"post_event_date"`
}

type PostCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type PostResponse struct {
	PostID        uuid.UUID  `json:"post_id"`
	PostSchoolID  uuid.UUID  `json:"post_school_id"`
	PostAuthorID  uuid.UUID  `json:"post_author_id"`
	PostTitle     string     `json:"post_title"`
	PostContent   string     `json:"post_content"`
	PostType      string     `json:"post_type"`
	PostEventDate *time.Time `json:"post_event_date"`
	PostCreatedAt time.Time  `json:"post_created_at"`

	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	ViewerLiked  bool  `json:"viewer_liked"`
}

type PostLikeResponse struct {
	PostLikePostID  uuid.UUID `json:"post_like_post_id"`
	PostLikeUserID  uuid.UUID `json:"post_like_user_id"`
	PostLikeIsLiked bool      `json:"post_like_is_liked"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (r *PostCreateRequest) ToModel(schoolID, authorID uuid.UUID) *model.PostModel {
	postType := r.PostType
	if postType == "" {
		postType = model.PostTypeGeneral
	}
	return &model.PostModel{
		PostSchoolID:  schoolID,
		PostAuthorID:  authorID,
		PostTitle:     r.PostTitle,
		PostContent:   r.PostContent,
		PostType:      postType,
		PostEventDate: r.PostEventDate,
	}
}

func ToPostResponse(m *model.PostModel) *PostResponse {
	return &PostResponse{
		PostID:        m.PostID,
		PostSchoolID:  m.PostSchoolID,
		PostAuthorID:  m.PostAuthorID,
		PostTitle:     m.PostTitle,
		PostContent:   m.PostContent,
		PostType:      m.PostType,
		PostEventDate: m.PostEventDate,
		PostCreatedAt: m.PostCreatedAt,
	}
}

func ToPostLikeResponse(m *model.PostLikeModel) *PostLikeResponse {
	return &PostLikeResponse{
		PostLikePostID:  m.PostLikePostID,
		PostLikeUserID:  m.PostLikeUserID,
		PostLikeIsLiked: m.PostLikeIsLiked,
		UpdatedAt:       m.PostLikeUpdatedAt,
	}
}
