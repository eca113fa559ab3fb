package public

import (
	handlershared "github.com/casinodex-next/internal/http/handlers/shared"
	"github.com/casinodex-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler serves the public API surface.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}
