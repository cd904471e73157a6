package docxgen

import (
	"time"

	"github.com/alnah/go-docxgen/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" → named preset (iso, european, us, long, pt-long)
//   - any other value → returned unchanged
//
// Month names (MMMM, MMM) follow lang: "pt" for Portuguese, English otherwise.
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time, lang string) (string, error) {
	return dateutil.ResolveDate(value, t, lang)
}
