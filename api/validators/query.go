package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// ParseOptionalInt64 reads a numeric query parameter used for range filters.
// Missing, malformed, or negative values are treated as if the parameter was
// not sent, so a sloppy client widens the result set instead of erroring.
func ParseOptionalInt64(r *http.Request, key string) *int64 {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return nil
	}
	return &value
}

// QueryString returns the trimmed value of a query parameter.
func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
