package form

import (
	"strings"
	"time"

	"github.com/iudanet/cardform/internal/models"
)

// expiryLayouts форматы MM/YY, месяц может быть без ведущего нуля
var expiryLayouts = []string{models.ExpiryLayout, "1/06"}

// fallbackLayouts форматы, которыми разбирается "20" + введенный текст
var fallbackLayouts = []string{"2006/01", "2006-01", "2006/01/02", "2006-01-02"}

// ParseExpiry разбирает срок действия MM/YY или M/YY.
// Если формат не подошел, текст дополняется префиксом "20" и разбирается
// как год с месяцем, то есть двузначный год всегда считается 20xx.
func ParseExpiry(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, "20"+raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
