// Package vnd formats VND amounts the way the app displays them:
// thousands separated by commas, đồng sign appended.
package vnd

import "strconv"

// Format renders an amount in minor units, e.g. 65000 -> "65,000₫".
func Format(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	s := string(out) + "₫"
	if neg {
		return "-" + s
	}
	return s
}
