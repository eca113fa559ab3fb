package router

import (
	"net/http"
	"strings"

	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/geo"
	"github.com/casinodex-next/internal/tracker"

	"github.com/gin-gonic/gin"
)

const geoBlockedBody = "Access denied due to geographical restrictions"

var interceptorExcludedPrefixes = []string{"/api/", "/uploads/"}

// RequestInterceptor applies the edge policy to page routes: tracker
// bounce for /go/ links, geo blocking, and security headers. API and
// asset paths pass through untouched.
func RequestInterceptor(evaluator *geo.Evaluator, trackerClient *tracker.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isInterceptorExcluded(path) {
			c.Next()
			return
		}

		if campaignID, ok := goCampaignID(path); ok && trackerClient != nil {
			target := trackerClient.GoURL(campaignID, c.Request.URL.Query())
			if target == "" {
				target = trackerClient.FallbackURL()
			}
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		country := constants.GeoCountryUnknown
		if evaluator != nil {
			decision := evaluator.Evaluate(c.Request.Header)
			if decision.Country != "" {
				country = decision.Country
			}
			if decision.Blocked {
				c.Header(constants.GeoHeaderResponse, country)
				c.String(http.StatusForbidden, geoBlockedBody)
				c.Abort()
				return
			}
		}

		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Header(constants.GeoHeaderResponse, country)
		c.Next()
	}
}

// isInterceptorExcluded reports whether a path bypasses the edge
// policy: API routes, uploaded assets, and file requests (any path
// whose last segment carries an extension).
func isInterceptorExcluded(path string) bool {
	for _, prefix := range interceptorExcludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	if last := path[strings.LastIndex(path, "/")+1:]; strings.Contains(last, ".") {
		return true
	}
	return false
}

// goCampaignID extracts the campaign id from a /go/{campaign} path.
func goCampaignID(path string) (string, bool) {
	const prefix = "/go/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	campaign := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if campaign == "" || strings.Contains(campaign, "/") {
		return "", false
	}
	return campaign, true
}
