package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/ethpandaops/loadreport/internal/summary"
)

var byteUnits = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

type timeUnit struct {
	symbol string
	coef   float64
}

// timeUnits are the fixed units a summary time unit may select. Durations are
// recorded in milliseconds.
var timeUnits = map[string]timeUnit{
	"s":  {symbol: "s", coef: 0.001},
	"ms": {symbol: "ms", coef: 1},
	"us": {symbol: "µs", coef: 1000},
}

// Value renders v the way metric m presents its values. Rates become
// percentages, data sizes bytes, times durations, anything else a plain number.
func Value(v float64, m *summary.Metric, unit string) string {
	if m.Type == summary.KindRate {
		return Percent(v)
	}

	switch m.Contains {
	case summary.SemanticData:
		return Bytes(v)
	case summary.SemanticTime:
		return Duration(v, unit)
	default:
		return Number(v)
	}
}

// Percent renders a 0..1 ratio as a percentage, truncated at the fourth decimal.
func Percent(ratio float64) string {
	return strconv.FormatFloat(math.Trunc(ratio*10000)/100, 'f', 2, 64) + "%"
}

// Number renders v with at most six decimals and no trailing zeros.
func Number(v float64) string {
	return fixedNoTrailingZeros(v, 6)
}

// Bytes converts a byte count to a decimal (base 1000) human-readable size.
func Bytes(bytes float64) string {
	if bytes < 10 {
		return plain(bytes) + " B"
	}

	const base = 1000

	exp, scaled := 0, bytes
	for scaled >= base && exp < len(byteUnits)-1 {
		scaled /= base
		exp++
	}

	val := math.Floor(scaled*10+0.5) / 10
	if val < 10 {
		return fixedNoTrailingZeros(val, 1) + " " + byteUnits[exp]
	}

	return strconv.FormatFloat(val, 'f', 0, 64) + " " + byteUnits[exp]
}

// Duration renders a millisecond duration. A known unit ("s", "ms", "us")
// forces that unit with two decimals; otherwise the unit scales with the value.
func Duration(ms float64, unit string) string {
	if u, ok := timeUnits[unit]; ok {
		return strconv.FormatFloat(ms*u.coef, 'f', 2, 64) + u.symbol
	}

	return genericDuration(ms)
}

func genericDuration(ms float64) string {
	switch {
	case ms == 0:
		return "0s"
	case ms < 0.001:
		return plain(math.Trunc(ms*1_000_000)) + "ns"
	case ms < 1:
		return truncNoTrailingZeros(ms*1000, 2) + "µs"
	case ms < 1000:
		return truncNoTrailingZeros(ms, 2) + "ms"
	}

	prec := 2
	if ms > 60000 {
		prec = 0
	}

	result := truncNoTrailingZeros(math.Mod(ms, 60000)/1000, prec) + "s"

	rem := math.Trunc(ms / 60000)
	if rem < 1 {
		return result
	}

	result = plain(math.Mod(rem, 60)) + "m" + result

	rem = math.Trunc(rem / 60)
	if rem < 1 {
		return result
	}

	return plain(rem) + "h" + result
}

// plain renders v with as many digits as needed and never in exponent form.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fixedNoTrailingZeros(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}

	if s == "-0" {
		return "0"
	}

	return s
}

// truncNoTrailingZeros cuts v to prec decimals without rounding.
func truncNoTrailingZeros(v float64, prec int) string {
	mult := math.Pow(10, float64(prec))

	return fixedNoTrailingZeros(math.Trunc(mult*v)/mult, prec)
}
