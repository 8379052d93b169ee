// Package web ships the single-page storefront as embedded assets so the
// demo is one binary: the API and the page consuming it.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Register mounts the storefront at / and its assets under /static.
func Register(router *gin.Engine) {
	page, err := assets.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(sub))
}
