package public

import (
	"net/http"
	"time"

	"github.com/casinodex-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Sitemap renders the XML sitemap from the catalog slugs.
func (h *Handler) Sitemap(c *gin.Context) {
	body, err := h.SitemapBuilder.Build(time.Now())
	if err != nil {
		respondError(c, response.CodeInternal, "sitemap build failed", err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// RobotsTxt serves the crawler policy.
func (h *Handler) RobotsTxt(c *gin.Context) {
	c.String(http.StatusOK, h.MetaBuilder.RobotsTxt())
}

// GetMeta returns page metadata for a path, used by the frontend for
// server-side head tags.
func (h *Handler) GetMeta(c *gin.Context) {
	path := c.DefaultQuery("path", "/")
	response.Success(c, h.MetaBuilder.ForPath(path))
}
