package form

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Boundary shaping between what the user types and what the API transmits.
// Money travels as integer cents, ingredients as an ordered list, birth
// dates as dd/MM/yyyy text.

// CentsToDisplay renders integer cents as major units for form fields,
// e.g. 1050 -> "10.5". Division by 100 happens only here, at display time.
func CentsToDisplay(cents int) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', -1, 64)
}

// DisplayToCents parses a major-unit value back into integer cents,
// rounding so the minor-unit integer round-trips exactly.
func DisplayToCents(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return int(math.Round(v * 100)), nil
}

var ingredientSep = regexp.MustCompile(`\s*,\s*`)

// SplitIngredients turns the comma-separated field into the ordered list
// sent to the API: "a, b,c" -> ["a","b","c"].
func SplitIngredients(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return ingredientSep.Split(s, -1)
}

// JoinIngredients is the display form of the list: ["a","b","c"] -> "a, b, c".
func JoinIngredients(list []string) string {
	return strings.Join(list, ", ")
}

const (
	wireDateLayout  = "02/01/2006"
	inputDateLayout = "2006-01-02"
)

// WireDate converts a date field (ISO input or already day-first) to the
// dd/MM/yyyy format the API expects.
func WireDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(inputDateLayout, s); err == nil {
		return t.Format(wireDateLayout), nil
	}
	if t, err := time.Parse(wireDateLayout, s); err == nil {
		return t.Format(wireDateLayout), nil
	}
	return "", fmt.Errorf("invalid date %q", s)
}

// InputDate converts a wire-format date back to the ISO form date inputs use.
// Unparseable values pass through unchanged so editing never loses data.
func InputDate(s string) string {
	if t, err := time.Parse(wireDateLayout, strings.TrimSpace(s)); err == nil {
		return t.Format(inputDateLayout)
	}
	return s
}
