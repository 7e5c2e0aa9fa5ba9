package controller

import (
	"log"

	"alumnihub_backend/internals/constants"
	"alumnihub_backend/internals/features/community/posts/dto"
	"alumnihub_backend/internals/features/community/posts/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostCommentController struct {
	DB *gorm.DB
}

func NewPostCommentController(db *gorm.DB) *PostCommentController {
	return &PostCommentController{DB: db}
}

// POST /api/u/posts/:id/comments
func (ctrl *PostCommentController) CreateComment(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var req dto.PostCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var post model.PostModel
	if err := ctrl.DB.
		Where("post_id = ? AND post_school_id = ?", postID, sess.SchoolID).
		First(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}

	comment := model.PostCommentModel{
		PostCommentPostID:   postID,
		PostCommentUserID:   sess.UserID,
		PostCommentSchoolID: sess.SchoolID,
		PostCommentContent:  req.Content,
	}
	if err := ctrl.DB.Create(&comment).Error; err != nil {
		log.Printf("[ERROR] create comment on %s: %v", postID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create comment")
	}

	return helper.JsonCreated(c, "Comment created", comment)
}

// GET /api/u/posts/:id/comments
func (ctrl *PostCommentController) ListComments(c *fiber.Ctx) error {
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

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PostCommentModel{}).
		Where("post_comment_post_id = ?", postID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count comments")
	}

	var comments []model.PostCommentModel
	if err := ctrl.DB.
		Where("post_comment_post_id = ?", postID).
		Order("post_comment_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch comments")
	}

	return helper.JsonList(c, "Comments fetched", comments,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// DELETE /api/u/posts/:id/comments/:comment_id
func (ctrl *PostCommentController) DeleteComment(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment ID")
	}

	var comment model.PostCommentModel
	if err := ctrl.DB.
		Where("post_comment_id = ? AND post_comment_school_id = ?", commentID, sess.SchoolID).
		First(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
	}
	if comment.PostCommentUserID != sess.UserID && sess.Role != constants.RoleAdmin && !sess.IsOwner {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can delete this comment")
	}

	if err := ctrl.DB.Delete(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete comment")
	}

	return helper.JsonDeleted(c, "Comment deleted", fiber.Map{"post_comment_id": commentID})
}
