package pantry

import (
	"time"

	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/entities"
)

// RemainingDays returns the whole days between today and the expiry date,
// negative when already past. ok is false when the item has no expiry date.
func RemainingDays(expiryDate *time.Time, today time.Time) (int, bool) {
	if expiryDate == nil {
		return 0, false
	}
	days := int(truncateToDay(*expiryDate).Sub(truncateToDay(today)).Hours() / 24)
	return days, true
}

// Classify places an item into a severity band based purely on the days left
// until expiry. Thresholds are checked in ascending severity order and the
// first match wins, so the bands stay mutually exclusive.
func Classify(item *entities.PantryItem, today time.Time) domain.SeverityBand {
	remaining, ok := RemainingDays(item.ExpiryDate, today)
	if !ok {
		return domain.SeverityUnknown
	}

	switch {
	case remaining <= 0:
		return domain.SeverityExpired
	case remaining <= 1:
		return domain.SeverityCritical
	case remaining <= 3:
		return domain.SeverityWarning
	case remaining <= 7:
		return domain.SeverityCaution
	default:
		return domain.SeverityGood
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
