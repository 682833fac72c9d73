package api

import (
	"Vynce/internal/api/middleware"
	"Vynce/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		dropGroup := apiGroup.Group("/drops")
		{
			// Anonymous traffic still gets a feed, just without the
			// interest boost.
			openGroup := dropGroup.Group("")
			openGroup.Use(middleware.IdentityOptionalMiddleware())
			{
				openGroup.GET("/feed", group.DropHandler.Feed)
				openGroup.GET("/detail/:drop_id", group.DropHandler.GetDrop)
				openGroup.GET("/list/:user_id", group.DropHandler.GetDropsByUserID)
			}

			identGroup := dropGroup.Group("")
			identGroup.Use(middleware.IdentityMiddleware())
			{
				identGroup.POST("", group.DropHandler.CreateDrop)
				identGroup.DELETE("/:drop_id", group.DropHandler.DeleteDrop)
				identGroup.GET("/self", group.DropHandler.GetDropsSelf)
				identGroup.GET("/interests", group.DropHandler.Interests)
			}
		}

		actionGroup := apiGroup.Group("/drop/action")
		actionGroup.Use(middleware.IdentityMiddleware())
		{
			actionGroup.POST("/likes/:drop_id", group.DropActionHandler.LikeDrop)
			actionGroup.POST("/saves/:drop_id", group.DropActionHandler.SaveDrop)
			actionGroup.POST("/shares/:drop_id", group.DropActionHandler.ShareDrop)
			actionGroup.POST("/comments", group.DropActionHandler.CreateComment)
			actionGroup.DELETE("/comments/:comment_id", group.DropActionHandler.DeleteComment)
		}

		followGroup := apiGroup.Group("/user-relation")
		followGroup.Use(middleware.IdentityMiddleware())
		{
			followGroup.GET("/isfollow/:user_id", group.UserFollowHandler.IsFollowing)
			followGroup.POST("/follow/:user_id", group.UserFollowHandler.Follow)
			followGroup.DELETE("/follow/:user_id", group.UserFollowHandler.Unfollow)
		}
	}

	return r
}
