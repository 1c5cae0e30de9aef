package monitoring

import (
	"github.com/rs/zerolog/log"
)

// Alert logs an operator-facing alert (stands in for a paging integration).
func Alert(message string, labels map[string]string) {
	log.Error().
		Str("alert", message).
		Fields(labels).
		Msg("ALERT: replica sync issue detected")
}
