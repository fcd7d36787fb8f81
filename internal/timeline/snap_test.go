package timeline

import (
	"testing"
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSnapTime_Day(t *testing.T) {
	morning := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, midnight, snapTime(morning, domain.SnapDay), "before noon rounds down")
	assert.Equal(t, midnight.AddDate(0, 0, 1), snapTime(evening, domain.SnapDay), "after noon rounds up")
	assert.Equal(t, midnight, snapTime(midnight, domain.SnapDay), "boundary stays put")
}

func TestSnapTime_Week(t *testing.T) {
	// 2026-03-04 is a Wednesday; its week starts Monday 2026-03-02.
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, snapTime(tuesday, domain.SnapWeek))
	assert.Equal(t, monday.AddDate(0, 0, 7), snapTime(friday, domain.SnapWeek))
}

func TestSnapTime_Month(t *testing.T) {
	early := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), snapTime(early, domain.SnapMonth))
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), snapTime(late, domain.SnapMonth))
}

func TestSnapTime_NoneIsIdentity(t *testing.T) {
	odd := time.Date(2026, 3, 2, 13, 37, 42, 0, time.UTC)
	assert.Equal(t, odd, snapTime(odd, domain.SnapNone))
}

func TestShiftByDays_Fractional(t *testing.T) {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, base.Add(6*time.Hour), shiftByDays(base, 0.25))
	assert.Equal(t, base.AddDate(0, 0, -7), shiftByDays(base, -7))
}
