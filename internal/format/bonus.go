package format

import (
	"math"

	"golang.org/x/text/number"
)

// Bonus points are stored as integers scaled by 10^decimalPlaces, where
// decimalPlaces is a site setting. raw=12345 with 2 places displays as 123.45.

// RawToDisplay converts a stored bonus point value to its display value
func RawToDisplay(raw int64, decimalPlaces int) float64 {
	return float64(raw) / math.Pow(10, float64(decimalPlaces))
}

// DisplayToRaw converts a user-entered display value back to the stored
// integer, rounding to the nearest unit.
func DisplayToRaw(display float64, decimalPlaces int) int64 {
	return int64(math.Round(display * math.Pow(10, float64(decimalPlaces))))
}

// BonusPoints renders a stored value truncated to its integer part, grouped
// according to the formatter's language: 1234567 with 2 places is "12,345".
func (f *Formatter) BonusPoints(raw int64, decimalPlaces int) string {
	whole := int64(math.Trunc(RawToDisplay(raw, decimalPlaces)))
	return f.printer.Sprintf("%v", number.Decimal(whole))
}

// BonusPointsDecimals renders a stored value with exactly displayDecimals
// fractional digits, rounding half away from zero: 125 with 2 places shown
// with 1 digit is "1.3". A negative displayDecimals uses decimalPlaces.
func (f *Formatter) BonusPointsDecimals(raw int64, decimalPlaces, displayDecimals int) string {
	if displayDecimals < 0 {
		displayDecimals = decimalPlaces
	}
	rounded, places := roundRaw(raw, decimalPlaces, displayDecimals), decimalPlaces
	if displayDecimals < decimalPlaces {
		places = displayDecimals
	}
	shifted := RawToDisplay(rounded, places)
	return f.printer.Sprintf("%v", number.Decimal(shifted, number.Scale(displayDecimals)))
}

// roundRaw drops the stored digits beyond displayDecimals, rounding half
// away from zero on the integer so no float tie is involved
func roundRaw(raw int64, decimalPlaces, displayDecimals int) int64 {
	if displayDecimals >= decimalPlaces {
		return raw
	}
	unit := int64(math.Pow10(decimalPlaces - displayDecimals))
	q, r := raw/unit, raw%unit
	if r < 0 {
		r = -r
	}
	if 2*r >= unit {
		if raw < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}
