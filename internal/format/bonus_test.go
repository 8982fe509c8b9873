package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestRawToDisplay(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 123.45, RawToDisplay(12345, 2), 1e-9)
	assert.InDelta(t, 12345.0, RawToDisplay(12345, 0), 1e-9)
	assert.InDelta(t, 0.001, RawToDisplay(1, 3), 1e-12)
}

func TestDisplayToRaw(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(12345), DisplayToRaw(123.45, 2))
	assert.Equal(t, int64(12346), DisplayToRaw(123.456, 2))
	assert.Equal(t, int64(10), DisplayToRaw(10, 0))
	assert.Equal(t, int64(-250), DisplayToRaw(-2.5, 2))
}

func TestBonusPointsRoundTrip(t *testing.T) {
	t.Parallel()

	raws := []int64{0, 1, 7, 99, 12345, -12345, 987654321, 1 << 40}
	for places := 0; places <= 6; places++ {
		for _, raw := range raws {
			assert.Equal(t, raw, DisplayToRaw(RawToDisplay(raw, places), places),
				"round trip raw=%d places=%d", raw, places)
		}
	}
}

func TestFormatter_BonusPoints(t *testing.T) {
	t.Parallel()

	f := New(WithLanguage(language.English))

	assert.Equal(t, "12,345", f.BonusPoints(1234567, 2))
	assert.Equal(t, "0", f.BonusPoints(99, 2))
	assert.Equal(t, "1,234,567", f.BonusPoints(1234567, 0))
}

func TestFormatter_BonusPointsDecimals(t *testing.T) {
	t.Parallel()

	f := New(WithLanguage(language.English))

	assert.Equal(t, "12,345.67", f.BonusPointsDecimals(1234567, 2, 2))
	assert.Equal(t, "12,345.6", f.BonusPointsDecimals(1234560, 2, 1))
	assert.Equal(t, "123.450", f.BonusPointsDecimals(12345, 2, 3))
	// Negative display precision falls back to the stored precision
	assert.Equal(t, "123.45", f.BonusPointsDecimals(12345, 2, -1))
}

func TestFormatter_BonusPointsDecimalsRoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	f := New(WithLanguage(language.English))

	tests := []struct {
		raw      int64
		places   int
		display  int
		expected string
	}{
		{125, 2, 1, "1.3"},
		{135, 2, 1, "1.4"},
		{124, 2, 1, "1.2"},
		{-125, 2, 1, "-1.3"},
		{12345, 3, 0, "12"},
		{12500, 3, 0, "13"},
		{1234567, 2, 0, "12,346"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, f.BonusPointsDecimals(tt.raw, tt.places, tt.display),
			"BonusPointsDecimals(%d, %d, %d)", tt.raw, tt.places, tt.display)
	}
}
