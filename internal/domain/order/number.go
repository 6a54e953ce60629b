package order

import (
	"fmt"
	"time"
)

// GenerateNumber builds a human-readable document number such as
// ORD-2025-123456: the prefix, the year, and the last six digits of the
// millisecond timestamp. Uniqueness is left to the database constraint.
func GenerateNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, now.Year(), now.UnixMilli()%1_000_000)
}
