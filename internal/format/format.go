// Package format builds display strings for recipe quantities.
package format

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Calories renders a rounded, comma-grouped calorie count, e.g. "1,281 kcal".
func Calories(cal float64) string {
	if cal < 0 {
		cal = 0
	}
	return humanize.Comma(int64(math.Round(cal))) + " kcal"
}

// Weight renders a rounded gram weight, e.g. "2,350 g".
func Weight(grams float64) string {
	if grams < 0 {
		grams = 0
	}
	return humanize.Comma(int64(math.Round(grams))) + " g"
}

// Quantity renders a nutrient amount with at most one decimal, e.g. "42.1 g".
func Quantity(value float64, unit string) string {
	s := humanize.CommafWithDigits(value, 1)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// Yield renders a serving count, e.g. "serves 4".
func Yield(servings float64) string {
	if servings <= 0 {
		return ""
	}
	return "serves " + humanize.CommafWithDigits(servings, 1)
}

// Columns pads two-column rows so labels align left and values align right,
// with two spaces between the widest entries.
func Columns(rows [][2]string) []string {
	if len(rows) == 0 {
		return nil
	}
	labelWidth, valueWidth := 0, 0
	for _, row := range rows {
		if w := len([]rune(row[0])); w > labelWidth {
			labelWidth = w
		}
		if w := len([]rune(row[1])); w > valueWidth {
			valueWidth = w
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		b.WriteString(row[0])
		for n := labelWidth - len([]rune(row[0])); n > 0; n-- {
			b.WriteByte(' ')
		}
		b.WriteString("  ")
		for n := valueWidth - len([]rune(row[1])); n > 0; n-- {
			b.WriteByte(' ')
		}
		b.WriteString(row[1])
		out[i] = b.String()
	}
	return out
}
