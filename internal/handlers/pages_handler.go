package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the static marketing/dashboard pages that ship in the
// public directory, with an API-aware 404 fallback.
type PagesHandler struct {
	publicDir string
}

func NewPagesHandler(publicDir string) *PagesHandler {
	return &PagesHandler{publicDir: publicDir}
}

var pageRoutes = map[string]string{
	"/":          "index.html",
	"/items":     "items.html",
	"/about":     "about.html",
	"/contact":   "contact.html",
	"/auth":      "auth.html",
	"/dashboard": "dashboard.html",
}

func (h *PagesHandler) Register(r *gin.Engine) {
	for route, file := range pageRoutes {
		r.GET(route, h.servePage(file))
	}

	r.NoRoute(h.fallback)
}

func (h *PagesHandler) servePage(file string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(h.publicDir, file))
	}
}

func (h *PagesHandler) fallback(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
		return
	}

	// Static assets resolve before the 404 page does.
	if c.Request.Method == http.MethodGet {
		asset := filepath.Join(h.publicDir, filepath.Clean(c.Request.URL.Path))
		if rel, err := filepath.Rel(h.publicDir, asset); err == nil && !strings.HasPrefix(rel, "..") {
			if fileExists(asset) {
				c.File(asset)
				return
			}
		}
	}

	// c.File would reset the status to 200, so the 404 page is served by hand.
	page, err := os.ReadFile(filepath.Join(h.publicDir, "404.html"))
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", page)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
