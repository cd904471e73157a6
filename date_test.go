package docxgen

import (
	"errors"
	"testing"
	"time"

	"github.com/alnah/go-docxgen/internal/dateutil"
)

func TestResolveDate(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		lang    string
		want    string
		wantErr error
	}{
		{"passthrough", "Xai-Xai, Outubro de 2025", "pt", "Xai-Xai, Outubro de 2025", nil},
		{"auto", "auto", "", "2025-10-01", nil},
		{"portuguese preset", "auto:pt-long", "pt", "Outubro de 2025", nil},
		{"invalid", "auto:[oops", "", "", dateutil.ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, fixed, tt.lang)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveDate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
