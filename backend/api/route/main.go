package route

import (
	"embed"

	"docboard/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetRouter(route *gin.Engine, buildFS embed.FS, indexPage []byte) {
	route.Use(middleware.GzipDecodeMiddleware())
	route.Use(middleware.GzipEncodeMiddleware())

	SetApiRouter(route)
	setWebRouter(route, buildFS, indexPage)
}
