package fmt

import (
	"fmt"
	"strings"
)

// SprintFloat formats value with at most decimal digits after the point, trimming trailing zeros.
func SprintFloat(value float64, decimal uint) string {
	var floatStr string
	if decimal > 0 {
		floatStr = fmt.Sprintf("%.*f", decimal, value)
		floatStr = strings.TrimRight(strings.TrimRight(floatStr, "0"), ".")
	} else {
		floatStr = fmt.Sprintf("%.0f", value)
	}
	if floatStr == "-0" {
		return "0"
	}
	return floatStr
}

// SprintDelta is like SprintFloat, but positive values carry a leading "+".
func SprintDelta(value float64, decimal uint) string {
	str := SprintFloat(value, decimal)
	if str != "0" && !strings.HasPrefix(str, "-") {
		return "+" + str
	}
	return str
}
