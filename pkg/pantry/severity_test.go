package pantry

import (
	"testing"
	"time"

	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/entities"
	"github.com/stretchr/testify/assert"
)

var severityToday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func itemExpiringIn(days int) *entities.PantryItem {
	expiry := severityToday.AddDate(0, 0, days)
	return &entities.PantryItem{ExpiryDate: &expiry}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		days int
		want domain.SeverityBand
	}{
		{"expired yesterday", -1, domain.SeverityExpired},
		{"expires today", 0, domain.SeverityExpired},
		{"expires tomorrow", 1, domain.SeverityCritical},
		{"expires in two days", 2, domain.SeverityWarning},
		{"expires in three days", 3, domain.SeverityWarning},
		{"expires in four days", 4, domain.SeverityCaution},
		{"expires in seven days", 7, domain.SeverityCaution},
		{"expires in eight days", 8, domain.SeverityGood},
		{"expires next year", 365, domain.SeverityGood},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(itemExpiringIn(c.days), severityToday))
		})
	}
}

func TestClassifyNoExpiryDate(t *testing.T) {
	item := &entities.PantryItem{}
	assert.Equal(t, domain.SeverityUnknown, Classify(item, severityToday))
}

func TestRemainingDays(t *testing.T) {
	days, ok := RemainingDays(nil, severityToday)
	assert.False(t, ok)
	assert.Zero(t, days)

	expiry := severityToday.AddDate(0, 0, 5)
	days, ok = RemainingDays(&expiry, severityToday)
	assert.True(t, ok)
	assert.Equal(t, 5, days)

	past := severityToday.AddDate(0, 0, -3)
	days, _ = RemainingDays(&past, severityToday)
	assert.Equal(t, -3, days)
}

func TestRemainingDaysIgnoresTimeOfDay(t *testing.T) {
	// only the calendar date matters; a late-evening expiry is still one
	// whole day away from an early-morning today
	expiry := time.Date(2024, 6, 2, 23, 59, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC)

	days, ok := RemainingDays(&expiry, now)
	assert.True(t, ok)
	assert.Equal(t, 1, days)
}
