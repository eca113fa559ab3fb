package geo

import (
	"net/http"
	"strings"

	"github.com/casinodex-next/internal/constants"
)

// Decision is the outcome of one geo evaluation.
type Decision struct {
	Country string
	Blocked bool
	Reason  string
}

// Evaluator decides whether a request's country is restricted. It is a
// pure function of request headers; absent or unknown country data is
// treated as unrestricted.
type Evaluator struct {
	blocked        map[string]struct{}
	overrideHeader string
}

// NewEvaluator builds an evaluator from the blocked country list and
// the test override header name. Country codes are matched
// case-insensitively.
func NewEvaluator(blockedCountries []string, overrideHeader string) *Evaluator {
	blocked := make(map[string]struct{}, len(blockedCountries))
	for _, code := range blockedCountries {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if normalized == "" {
			continue
		}
		blocked[normalized] = struct{}{}
	}
	header := strings.TrimSpace(overrideHeader)
	if header == "" {
		header = "x-geo-block"
	}
	return &Evaluator{blocked: blocked, overrideHeader: header}
}

// Evaluate inspects request headers and returns a blocking decision.
// The override header forces a block regardless of country; otherwise
// the CDN country header wins over the generic one.
func (e *Evaluator) Evaluate(header http.Header) Decision {
	if isOverrideSet(header.Get(e.overrideHeader)) {
		return Decision{
			Country: e.country(header),
			Blocked: true,
			Reason:  "test_override",
		}
	}

	country := e.country(header)
	if country == "" {
		return Decision{}
	}
	if _, found := e.blocked[country]; found {
		return Decision{
			Country: country,
			Blocked: true,
			Reason:  "restricted_country",
		}
	}
	return Decision{Country: country}
}

// IsBlockedCountry reports whether a bare country code is restricted.
func (e *Evaluator) IsBlockedCountry(code string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return false
	}
	_, found := e.blocked[normalized]
	return found
}

func (e *Evaluator) country(header http.Header) string {
	for _, name := range []string{constants.GeoHeaderCloudflare, constants.GeoHeaderGeneric} {
		if value := strings.ToUpper(strings.TrimSpace(header.Get(name))); value != "" {
			return value
		}
	}
	return ""
}

func isOverrideSet(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true"
}
