package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Panel pricing constants. The panel width is a domain constant of the
// production line, not configurable.
const (
	panelWidthM    = 1.21
	panelWidthMm   = 1210
	baseRatePerSqm = 22.0
)

// surchargePerSqm maps thickness (mm) to the per-square-meter surcharge.
var surchargePerSqm = map[string]float64{
	"0.5": 0,
	"0.6": 3,
	"0.7": 4,
}

// Calculation is the price/area breakdown for one custom-length cut.
// It exists only for the duration of a request and is never persisted.
type Calculation struct {
	WidthM    float64
	LengthM   float64
	Area      float64
	Base      float64
	Surcharge float64
	Final     float64
}

// Calculate computes the quote for a cut of lengthMm at the given thickness.
// Rounding is half-away-from-zero: three decimals for the area, two for all
// monetary amounts. Inputs are validated upstream; Calculate has no error paths.
func Calculate(lengthMm int, thickness string) Calculation {
	lengthM := float64(lengthMm) / 1000
	area := round3(panelWidthM * lengthM)
	base := round2(area * baseRatePerSqm)
	surcharge := round2(area * surchargePerSqm[thickness])
	final := round2(base + surcharge)

	return Calculation{
		WidthM:    panelWidthM,
		LengthM:   lengthM,
		Area:      area,
		Base:      base,
		Surcharge: surcharge,
		Final:     final,
	}
}

// ThicknessCode converts a thickness value to its two-digit SKU code:
// "0.5"->"05", "0.6"->"06", "0.7"->"07". Unexpected values are normalized by
// stripping the decimal point and left-padding to two digits.
func ThicknessCode(thickness string) string {
	switch thickness {
	case "0.5":
		return "05"
	case "0.6":
		return "06"
	case "0.7":
		return "07"
	}

	code := strings.ReplaceAll(thickness, ".", "")
	for len(code) < 2 {
		code = "0" + code
	}
	return code
}

// BuildSKU derives the catalog SKU. With a base SKU the result is fully
// deterministic; without one the current timestamp keeps generated SKUs unique.
func BuildSKU(baseSku string, lengthMm int, thickness string, now time.Time) string {
	if baseSku != "" {
		return fmt.Sprintf("%s-%d-%s", baseSku, lengthMm, ThicknessCode(thickness))
	}
	return fmt.Sprintf("CUST-%d-%d-%s", now.UnixMilli(), lengthMm, ThicknessCode(thickness))
}

// BuildName derives the display name, embedding the panel width taken from
// the base SKU when one was supplied.
func BuildName(baseSku string, lengthMm int, thickness string) string {
	width := strconv.Itoa(panelWidthMm)
	if baseSku != "" {
		width = strings.TrimPrefix(baseSku, "WIDTH-")
	}
	return fmt.Sprintf("Sheet %smm × %dmm, %smm (custom cut)", width, lengthMm, thickness)
}

// BuildDescription renders the price breakdown for the catalog entry.
func BuildDescription(c Calculation) string {
	return fmt.Sprintf("Area: %s m². Base: %s €. Surcharge: %s €. Total: %s €",
		formatAmount(c.Area), formatAmount(c.Base), formatAmount(c.Surcharge), formatAmount(c.Final))
}

// formatAmount renders a number without trailing zeros (36.60 -> "36.6").
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
