package util

import (
	"fmt"
	"strings"
)

const (
	decimalValue  = 100
	thousandValue = 1000
)

// FormatMoney renders cents for terminal display with a thousand and a
// decimal separator, e.g. FormatMoney(1234567, ",", ".") -> "12,345.67".
func FormatMoney(value int64, thousand, decimal string) string {
	var b strings.Builder
	isNegative := value < 0
	if isNegative {
		value = -value
	}

	result := fmt.Sprintf("%s%02d", decimal, value%decimalValue)
	value /= decimalValue

	for value >= thousandValue {
		result = fmt.Sprintf("%s%03d%s", thousand, value%thousandValue, result)
		value /= thousandValue
	}

	if isNegative {
		b.WriteString("-")
	}
	b.WriteString(fmt.Sprintf("%d%s", value, result))

	return b.String()
}
