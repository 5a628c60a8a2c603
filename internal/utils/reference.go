package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingReference generates a confirmation reference for a booked
// appointment, e.g. APT_20250201_9F3A2C41.
func BookingReference(at time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("APT_%s_%s", at.Format("20060102"), token)
}
