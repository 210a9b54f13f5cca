package tui

import (
	"strings"

	"github.com/noted-app/noted/internal/service"
)

// humanizeError turns a service error into a message fit for the screen.
// Network-level failures get one generic line; everything else shows the
// message the server sent.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return service.ServerMessage(err)
}
