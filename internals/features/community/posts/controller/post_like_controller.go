package controller

import (
	"database/sql"
	"log"

	"alumnihub_backend/internals/features/community/posts/dto"
	"alumnihub_backend/internals/features/community/posts/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostLikeController struct {
	DB *gorm.DB
}

func NewPostLikeController(db *gorm.DB) *PostLikeController {
	return &PostLikeController{DB: db}
}

// POST /api/u/posts/:id/like
// Atomic toggle: insert liked=TRUE, or flip the existing row.
func (ctrl *PostLikeController) ToggleLike(c *fiber.Ctx) error {
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

	var row model.PostLikeModel
	raw := `
		INSERT INTO post_likes (
			post_like_id,
			post_like_is_liked,
			post_like_post_id,
			post_like_user_id,
			post_like_school_id
		)
		VALUES (gen_random_uuid(), TRUE, @post_id, @user_id, @school_id)
		ON CONFLICT (post_like_post_id, post_like_user_id)
		DO UPDATE SET
			post_like_is_liked = NOT post_likes.post_like_is_liked,
			post_like_updated_at = NOW()
		RETURNING
			post_like_id,
			post_like_is_liked,
			post_like_post_id,
			post_like_user_id,
			post_like_school_id,
			post_like_updated_at
	`
	if err := ctrl.DB.
		Raw(raw,
			sql.Named("post_id", postID),
			sql.Named("user_id", sess.UserID),
			sql.Named("school_id", sess.SchoolID),
		).
		Scan(&row).Error; err != nil {
		log.Printf("[ERROR] toggle like on %s: %v", postID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle like")
	}

	return helper.JsonOK(c, "Like toggled", dto.ToPostLikeResponse(&row))
}

// GET /api/u/posts/:id/likes
func (ctrl *PostLikeController) ListLikes(c *fiber.Ctx) error {
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
	if err := ctrl.DB.Model(&model.PostLikeModel{}).
		Where("post_like_post_id = ? AND post_like_is_liked = TRUE", postID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count likes")
	}

	var likes []model.PostLikeModel
	if err := ctrl.DB.
		Where("post_like_post_id = ? AND post_like_is_liked = TRUE", postID).
		Order("post_like_updated_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&likes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch likes")
	}

	return helper.JsonList(c, "Likes fetched", likes,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}
