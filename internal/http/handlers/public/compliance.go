package public

import (
	"net/http"
	"time"

	"github.com/casinodex-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// GeoCheck reports whether the caller's country is restricted. When
// the evaluator is unavailable the endpoint degrades to unblocked so a
// policy outage never locks visitors out.
func (h *Handler) GeoCheck(c *gin.Context) {
	country := constants.GeoCountryUnknown
	blocked := false

	if h.GeoEvaluator != nil {
		decision := h.GeoEvaluator.Evaluate(c.Request.Header)
		blocked = decision.Blocked
		if decision.Country != "" {
			country = decision.Country
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"blocked":   blocked,
		"country":   country,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
