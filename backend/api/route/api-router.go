package route

import (
	"docboard/backend/api/handler"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(route *gin.Engine) {
	apiRouter := route.Group("/api")
	{
		apiRouter.GET("/status", handler.GetStatus)

		fileRoute := apiRouter.Group("/file")
		{
			fileRoute.GET("/", handler.GetAllFiles)
			fileRoute.GET("/search", handler.SearchFiles)
			fileRoute.GET("/:id", handler.GetFile)
			fileRoute.POST("/", handler.CreateFile)
			fileRoute.POST("/upload", handler.UploadFiles)
			fileRoute.PUT("/:id", handler.UpdateFile)
			fileRoute.DELETE("/:id", handler.DeleteFile)
		}

		// Per-session view state: the file the viewer shows and the last
		// reported text selection.
		viewRoute := apiRouter.Group("/view")
		{
			viewRoute.GET("/current", handler.GetCurrentFile)
			viewRoute.PUT("/current", handler.SetCurrentFile)
			viewRoute.GET("/selection", handler.GetSelection)
			viewRoute.PUT("/selection", handler.SetSelection)
		}
	}
}
