package partitioner_test

import (
	"testing"

	partitioner "github.com/mreithub/go-index-partitioner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t testing.TB, since, until partitioner.Date) partitioner.TimeWindow {
	var w, err = partitioner.NewTimeWindow(since, until)
	require.NoError(t, err)
	return w
}

func collect(w partitioner.TimeWindow) []partitioner.Date {
	var rc []partitioner.Date
	for d := range w.Days() {
		rc = append(rc, d)
	}
	return rc
}

func TestTimeWindowErrors(t *testing.T) {
	var _, err = partitioner.NewTimeWindow(date(2018, 6, 10), date(2018, 5, 8))
	assert.ErrorIs(t, err, partitioner.ErrRange)

	_, err = partitioner.NewTimeWindow(date(2018, 2, 30), date(2018, 5, 8))
	assert.ErrorIs(t, err, partitioner.ErrInvalidArgument)

	_, err = partitioner.NewTimeWindow(date(2018, 2, 3), partitioner.Date{})
	assert.ErrorIs(t, err, partitioner.ErrInvalidArgument)
}

func TestTimeWindowDeltas(t *testing.T) {
	var w = mustWindow(t, date(2017, 12, 31), date(2018, 1, 1))
	assert.Equal(t, 1, w.DeltaYears()) // year numbers, not elapsed years
	assert.Equal(t, 1, w.DeltaDays())
	assert.Equal(t, 2, w.Len())

	w = mustWindow(t, date(2014, 9, 27), date(2018, 2, 4))
	assert.Equal(t, 4, w.DeltaYears())
	assert.Equal(t, 1226, w.DeltaDays())

	w = mustWindow(t, date(2018, 2, 4), date(2018, 2, 4))
	assert.Equal(t, 0, w.DeltaYears())
	assert.Equal(t, 0, w.DeltaDays())
	assert.Equal(t, []partitioner.Date{date(2018, 2, 4)}, collect(w))

	// would overflow time.Duration
	w = mustWindow(t, date(1, 1, 1), date(9999, 12, 31))
	assert.Equal(t, 3652058, w.DeltaDays())
}

func TestTimeWindowDays(t *testing.T) {
	var w = mustWindow(t, date(2016, 2, 27), date(2016, 3, 2))
	var expected = []partitioner.Date{
		date(2016, 2, 27), date(2016, 2, 28), date(2016, 2, 29), date(2016, 3, 1), date(2016, 3, 2),
	}
	assert.Equal(t, expected, collect(w))
	assert.Equal(t, expected, collect(w), "Days() should be restartable")
	assert.Equal(t, w.Len(), len(collect(w)))

	// breaking out early
	var count = 0
	for range w.Days() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)

	assert.Equal(t, date(2016, 2, 27), w.Since())
	assert.Equal(t, date(2016, 3, 2), w.Until())
	assert.Equal(t, "[2016-02-27, 2016-03-02]", w.String())
}

func TestZeroTimeWindow(t *testing.T) {
	var w partitioner.TimeWindow
	assert.Empty(t, collect(w))
	assert.Equal(t, 0, w.Len())
}

func TestTimeWindowLength(t *testing.T) {
	var since = date(2015, 11, 3)
	for n := 0; n < 800; n += 17 {
		var w = mustWindow(t, since, since.AddDays(n))
		var days = collect(w)
		assert.Equal(t, n, w.DeltaDays())
		require.Len(t, days, n+1)
		for i := 1; i < len(days); i++ {
			assert.Equal(t, days[i-1].AddDays(1), days[i])
		}
	}
}
