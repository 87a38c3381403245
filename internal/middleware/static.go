package middleware

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/dalfonso89/shop-mock-api/internal/models"
)

// StaticAssets serves files under dir at the site root. It is meant for
// router.NoRoute so API routes always take precedence; non-GET/HEAD
// requests, missing files and directories without an index.html get a
// JSON 404.
func StaticAssets(dir string) gin.HandlerFunc {
	fileSystem := gin.Dir(dir, false)
	fileServer := http.FileServer(fileSystem)

	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodGet && method != http.MethodHead {
			notFound(c)
			return
		}

		if !servable(fileSystem, c.Request.URL.Path) {
			notFound(c)
			return
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}

func servable(fileSystem http.FileSystem, name string) bool {
	file, err := fileSystem.Open(name)
	if err != nil {
		return false
	}
	info, err := file.Stat()
	file.Close()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}

	index, err := fileSystem.Open(path.Join(name, "index.html"))
	if err != nil {
		return false
	}
	index.Close()
	return true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not found",
		Message: c.Request.Method + " " + c.Request.URL.Path,
		Code:    http.StatusNotFound,
	})
}
