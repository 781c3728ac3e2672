package numfmt

// CollapseRange removes static affixes repeated on both sides of a range
// separator. It expects startRange parts, shared separator parts, then
// endRange parts, as produced by FormatRange.
//
// The affix run leading each endpoint and the affix run trailing each
// endpoint are compared. Equal runs holding a currency, unit or percent part
// are kept once and tagged shared: the start copy of a leading run, the end
// copy of a trailing run. "$3 – $5" becomes "$3–5" and "3 km – 5 km" becomes
// "3–5 km". Numeric parts, including signs, are never removed, so a sign
// before a currency symbol blocks collapsing.
func CollapseRange(parts []Part) []Part {
	start, middle, end, ok := splitRange(parts)
	if !ok {
		return append([]Part(nil), parts...)
	}

	startLead, endLead := leadingAffixes(start), leadingAffixes(end)
	keepStartLead := 0
	if startLead == endLead && collapsible(start[:startLead], end[:endLead]) {
		keepStartLead = startLead
		end = end[endLead:]
	}

	startTrail, endTrail := trailingAffixes(start[keepStartLead:]), trailingAffixes(end)
	keepEndTrail := 0
	if startTrail == endTrail && collapsible(start[len(start)-startTrail:], end[len(end)-endTrail:]) {
		keepEndTrail = endTrail
		start = start[:len(start)-startTrail]
	}

	out := make([]Part, 0, len(start)+len(middle)+len(end))
	out = append(out, tagParts(start[:keepStartLead], SourceShared)...)
	out = append(out, start[keepStartLead:]...)
	out = append(out, middle...)
	out = append(out, end[:len(end)-keepEndTrail]...)
	out = append(out, tagParts(end[len(end)-keepEndTrail:], SourceShared)...)
	return out
}

// splitRange slices a range into its start, separator and end segments.
func splitRange(parts []Part) (start, middle, end []Part, ok bool) {
	i := 0
	for i < len(parts) && parts[i].Source == SourceStartRange {
		i++
	}
	j := i
	for j < len(parts) && parts[j].Source == SourceShared {
		j++
	}
	for k := j; k < len(parts); k++ {
		if parts[k].Source != SourceEndRange {
			return nil, nil, nil, false
		}
	}
	if i == 0 || j == i || j == len(parts) {
		return nil, nil, nil, false
	}
	return parts[:i], parts[i:j], parts[j:], true
}

func isAffix(kind PartKind) bool {
	switch kind {
	case PartCurrency, PartUnit, PartPercentSign, PartLiteral:
		return true
	default:
		return false
	}
}

func leadingAffixes(parts []Part) int {
	n := 0
	for n < len(parts) && isAffix(parts[n].Type) {
		n++
	}
	return n
}

func trailingAffixes(parts []Part) int {
	n := 0
	for n < len(parts) && isAffix(parts[len(parts)-1-n].Type) {
		n++
	}
	return n
}

// collapsible reports whether two affix runs are identical and carry a
// currency, unit or percent part.
func collapsible(a, b []Part) bool {
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	static := false
	for i := range a {
		if a[i].Type != b[i].Type || a[i].Value != b[i].Value {
			return false
		}
		if a[i].Type != PartLiteral {
			static = true
		}
	}
	return static
}
