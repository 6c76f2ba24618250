package observability

import (
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/logging"
)

// Logger returns the global logger instance
func Logger() *zap.Logger {
	return logging.Logger
}

// MaskPhone masks a canonical phone number for logging, keeping the
// dial prefix and the last two digits visible
func MaskPhone(phone string) string {
	if len(phone) < 6 {
		return "****"
	}
	return phone[:4] + "******" + phone[len(phone)-2:]
}

// MaskSensitiveData masks sensitive data in a map
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	sensitiveFields := []string{"phone_number", "full_name", "email"}
	masked := make(map[string]interface{})

	for k, v := range data {
		if contains(sensitiveFields, k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
