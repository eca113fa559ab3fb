package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health runs the component probes and reports overall status. A
// degraded report answers 503 so load balancers can rotate the node out.
func (h *Handler) Health(c *gin.Context) {
	report := h.HealthService.Check(c.Request.Context())

	status := http.StatusOK
	if !report.Healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
