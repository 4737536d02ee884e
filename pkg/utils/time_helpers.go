package utils

import (
	"time"

	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts the two date shapes the clients send: plain "2006-01-02"
// and full RFC3339 timestamps.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewBadRequestError("Geçersiz tarih formatı. Beklenen: YYYY-AA-GG.")
}
