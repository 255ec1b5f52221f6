package expense

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const centsPerUnit = 100

// ParseAmount converts a decimal currency string into cents. Both dot and
// comma decimal separators are accepted. Anything beyond two decimals is
// rounded half-up on the third digit, which is the single place rounding
// happens in the whole pipeline: once an amount is in cents every later sum
// is exact integer arithmetic.
func ParseAmount(value string) (int64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, &ValidationError{Field: "amount", Reason: "must not be empty"}
	}

	if strings.HasPrefix(s, "-") {
		return 0, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	s = strings.TrimPrefix(s, "+")
	s = strings.ReplaceAll(s, ",", ".")

	intPart, fracPart, _ := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		return 0, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", value)}
	}
	if intPart == "" {
		intPart = "0"
	}

	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", value)}
		}
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || units > (1<<63-1)/centsPerUnit {
		return 0, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is out of range", value)}
	}

	var cents int64
	if len(fracPart) > 0 {
		cents = int64(fracPart[0]-'0') * 10
	}
	if len(fracPart) > 1 {
		cents += int64(fracPart[1] - '0')
	}
	if len(fracPart) > 2 && fracPart[2] >= '5' {
		cents++
	}

	return units*centsPerUnit + cents, nil
}

// FormatAmount renders cents as a plain two-decimal string, e.g. 2030 -> "20.30".
// This is the format used on the wire (JSON and CSV).
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/centsPerUnit, cents%centsPerUnit)
}
