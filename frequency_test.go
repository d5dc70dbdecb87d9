package partitioner_test

import (
	"testing"

	partitioner "github.com/mreithub/go-index-partitioner"
	"github.com/stretchr/testify/assert"
)

var (
	Year  = partitioner.Year
	Month = partitioner.Month
	Day   = partitioner.Day
)

func TestFrequencies(t *testing.T) {
	var d = date(2024, 2, 29)

	assert.Equal(t, date(2024, 2, 29), Day.Truncate(d))
	assert.Equal(t, date(2024, 2, 1), Month.Truncate(d))
	assert.Equal(t, date(2024, 1, 1), Year.Truncate(d))

	assert.True(t, Year < Month && Month < Day)
	assert.False(t, partitioner.Frequency(0).IsValid())
	assert.False(t, partitioner.Frequency(4).IsValid())

	assert.Equal(t, "month", Month.String())
	assert.Equal(t, "Frequency(7)", partitioner.Frequency(7).String())
}

func TestParseFrequency(t *testing.T) {
	for input, expected := range map[string]partitioner.Frequency{
		"year": Year, "Yearly": Year,
		"month": Month, " monthly ": Month,
		"day": Day, "DAILY": Day,
	} {
		var f, err = partitioner.ParseFrequency(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, f, input)
	}

	var _, err = partitioner.ParseFrequency("hourly")
	assert.ErrorIs(t, err, partitioner.ErrInvalidConfig)
}
