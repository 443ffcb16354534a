package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"wayfarer/config"
)

// PageHandler serves the demo pages straight off disk so copy edits don't
// need a rebuild.
type PageHandler struct {
	StaticDir string
}

func NewPageHandler() *PageHandler {
	return &PageHandler{StaticDir: config.AppConfig.StaticDir}
}

// Landing handles GET /.
func (h *PageHandler) Landing(c *gin.Context) {
	h.servePage(c, "landing.html", "<h1>Landing page not found</h1>")
}

// Demo handles GET /demo, the chat client.
func (h *PageHandler) Demo(c *gin.Context) {
	h.servePage(c, "index.html", "<h1>Demo not found</h1>")
}

func (h *PageHandler) servePage(c *gin.Context, name, missing string) {
	body, err := os.ReadFile(filepath.Join(h.StaticDir, name))
	if err != nil {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(missing))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}
