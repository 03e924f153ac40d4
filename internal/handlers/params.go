package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

// getParam returns a path or query parameter value regardless of whether the
// router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// parseIntParam parses a pagination parameter. Absent means the fallback,
// while malformed input becomes 0 so that the search validator rejects it
// (pagination is strict, unlike filter values).
func parseIntParam(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0
	}
	return value
}

// parseFloatParam parses an optional numeric filter value. Malformed input
// is treated as absent, never as an error.
func parseFloatParam(input string) *float64 {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &value
}

// parseListParam splits a comma-separated parameter, dropping empty chunks.
func parseListParam(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
