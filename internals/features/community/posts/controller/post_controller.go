package controller

import (
	"log"
	"strings"

	"alumnihub_backend/internals/constants"
	"alumnihub_backend/internals/features/community/posts/dto"
	"alumnihub_backend/internals/features/community/posts/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// POST /api/u/posts
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var req dto.PostCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	newPost := req.ToModel(sess.SchoolID, sess.UserID)
	if err := ctrl.DB.Create(newPost).Error; err != nil {
		log.Printf("[ERROR] create post: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}

	return helper.JsonCreated(c, "Post created", dto.ToPostResponse(newPost))
}

// GET /api/u/posts
// School feed, newest first, optional ?type= and ?search=.
func (ctrl *PostController) ListPosts(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 10, 100)

	tx := ctrl.DB.Model(&model.PostModel{}).
		Where("post_school_id = ?", sess.SchoolID)

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		tx = tx.Where("post_type = ?", t)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where("(post_title ILIKE ? OR post_content ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count posts")
	}

	var posts []model.PostModel
	if err := tx.
		Order("post_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&posts).Error; err != nil {
		log.Printf("[ERROR] list posts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	items := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, *dto.ToPostResponse(&posts[i]))
	}
	if err := ctrl.attachEngagement(sess.UserID, items); err != nil {
		log.Printf("[ERROR] post engagement: %v", err)
	}

	return helper.JsonList(c, "Posts fetched", items,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/posts/:id
func (ctrl *PostController) GetPostByID(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var post model.PostModel
	if err := ctrl.DB.
		Where("post_id = ? AND post_school_id = ?", postID, sess.SchoolID).
		First(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}

	items := []dto.PostResponse{*dto.ToPostResponse(&post)}
	if err := ctrl.attachEngagement(sess.UserID, items); err != nil {
		log.Printf("[ERROR] post engagement: %v", err)
	}

	return helper.JsonOK(c, "Post fetched", items[0])
}

// PATCH /api/u/posts/:id
// Author or a school admin.
func (ctrl *PostController) UpdatePost(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var post model.PostModel
	if err := ctrl.DB.
		Where("post_id = ? AND post_school_id = ?", postID, sess.SchoolID).
		First(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}
	if !ctrl.canModerate(sess, post.PostAuthorID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can edit this post")
	}

	var req dto.PostUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.PostTitle != nil {
		updates["post_title"] = *req.PostTitle
	}
	if req.PostContent != nil {
		updates["post_content"] = *req.PostContent
	}
	if req.PostType != nil {
		updates["post_type"] = *req.PostType
	}
	if req.PostEventDate != nil {
		updates["post_event_date"] = *req.PostEventDate
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&post).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update post %s: %v", postID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update post")
	}
	if err := ctrl.DB.Where("post_id = ?", postID).First(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload post")
	}

	return helper.JsonUpdated(c, "Post updated", dto.ToPostResponse(&post))
}

// DELETE /api/u/posts/:id
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var post model.PostModel
	if err := ctrl.DB.
		Where("post_id = ? AND post_school_id = ?", postID, sess.SchoolID).
		First(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}
	if !ctrl.canModerate(sess, post.PostAuthorID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can delete this post")
	}

	if err := ctrl.DB.Delete(&post).Error; err != nil {
		log.Printf("[ERROR] delete post %s: %v", postID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}

	return helper.JsonDeleted(c, "Post deleted", fiber.Map{"post_id": postID})
}

func (ctrl *PostController) canModerate(sess helperAuth.SessionContext, authorID uuid.UUID) bool {
	return sess.UserID == authorID || sess.Role == constants.RoleAdmin || sess.IsOwner
}

type engagementRow struct {
	ID    uuid.UUID `gorm:"column:id"`
	Count int64     `gorm:"column:count"`
}

// attachEngagement fills like/comment counts and the viewer's like flag for
// the page in three grouped queries.
func (ctrl *PostController) attachEngagement(viewerID uuid.UUID, items []dto.PostResponse) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.PostID)
	}

	var likes []engagementRow
	if err := ctrl.DB.Model(&model.PostLikeModel{}).
		Select("post_like_post_id AS id, COUNT(*) AS count").
		Where("post_like_post_id IN ? AND post_like_is_liked = TRUE", ids).
		Group("post_like_post_id").
		Scan(&likes).Error; err != nil {
		return err
	}

	var comments []engagementRow
	if err := ctrl.DB.Model(&model.PostCommentModel{}).
		Select("post_comment_post_id AS id, COUNT(*) AS count").
		Where("post_comment_post_id IN ?", ids).
		Group("post_comment_post_id").
		Scan(&comments).Error; err != nil {
		return err
	}

	var mine []uuid.UUID
	if viewerID != uuid.Nil {
		if err := ctrl.DB.Model(&model.PostLikeModel{}).
			Where("post_like_post_id IN ? AND post_like_user_id = ? AND post_like_is_liked = TRUE", ids, viewerID).
			Pluck("post_like_post_id", &mine).Error; err != nil {
			return err
		}
	}

	likeCounts := make(map[uuid.UUID]int64, len(likes))
	for _, r := range likes {
		likeCounts[r.ID] = r.Count
	}
	commentCounts := make(map[uuid.UUID]int64, len(comments))
	for _, r := range comments {
		commentCounts[r.ID] = r.Count
	}
	liked := make(map[uuid.UUID]bool, len(mine))
	for _, id := range mine {
		liked[id] = true
	}

	for i := range items {
		items[i].LikeCount = likeCounts[items[i].PostID]
		items[i].CommentCount = commentCounts[items[i].PostID]
		items[i].ViewerLiked = liked[items[i].PostID]
	}
	return nil
}
