package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// NewTrackingID returns a fresh customer-facing tracking id. It must be
// called once per confirmed payment.
func NewTrackingID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("SD-%s-%s", raw[:6], raw[6:12])
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}
