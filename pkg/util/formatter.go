package util

import (
	"fmt"
	"math"
	"strings"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/internal/consts"
)

// FormatValueFactor renders value with an engineering prefix on unit.
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1 || value == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatDensity renders an area-normalized quantity such as "A/cm^2" with
// the engineering prefix on the numerator unit only.
func FormatDensity(value float64, unit string) string {
	num, denom, ok := strings.Cut(unit, "/")
	if !ok {
		return FormatValueFactor(value, unit)
	}

	formatted := FormatValueFactor(value, num)
	return formatted + "/" + denom
}

// FormatTemperature renders a Kelvin temperature with its Celsius value.
func FormatTemperature(kelvin float64) string {
	return fmt.Sprintf("%.2f K (%.2f degC)", kelvin, kelvin-consts.KELVIN)
}
