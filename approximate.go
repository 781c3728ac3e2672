package numfmt

const defaultApproximatelySign = "~"

// MarkApproximate returns a copy of parts with the locale's approximately
// sign appended. parts is not modified.
func MarkApproximate(symbols Symbols, parts []Part) []Part {
	sign := symbols.ApproximatelySign
	if sign == "" {
		sign = defaultApproximatelySign
	}

	out := make([]Part, len(parts), len(parts)+1)
	copy(out, parts)
	return append(out, Part{Type: PartApproximatelySign, Value: sign})
}
