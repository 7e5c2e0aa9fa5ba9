package route

import (
	"alumnihub_backend/internals/features/community/posts/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PostUserRoutes(api fiber.Router, db *gorm.DB) {
	postCtrl := controller.NewPostController(db)
	commentCtrl := controller.NewPostCommentController(db)
	likeCtrl := controller.NewPostLikeController(db)

	posts := api.Group("/posts")
	posts.Post("/", postCtrl.CreatePost)
	posts.Get("/", postCtrl.ListPosts)
	posts.Get("/:id", postCtrl.GetPostByID)
	posts.Patch("/:id", postCtrl.UpdatePost)
	posts.Delete("/:id", postCtrl.DeletePost)

	posts.Post("/:id/comments", commentCtrl.CreateComment)
	posts.Get("/:id/comments", commentCtrl.ListComments)
	posts.Delete("/:id/comments/:comment_id", commentCtrl.DeleteComment)

	posts.Post("/:id/like", likeCtrl.ToggleLike)
	posts.Get("/:id/likes", likeCtrl.ListLikes)
}
