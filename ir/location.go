package ir

// Position is a (row, column) pair within a source file.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Before reports whether p precedes q, comparing rows first, then columns.
func (p Position) Before(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Location is an immutable source range: a file name plus start and end
// positions. The zero value is the unknown location.
type Location struct {
	File  string   `json:"file,omitempty"`
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// UnknownLoc returns the unknown location.
func UnknownLoc() Location {
	return Location{}
}

// IsUnknown reports whether the location carries no source information.
func (l Location) IsUnknown() bool {
	return l == Location{}
}

// Combine returns the smallest range covering both a and b: the earlier
// of the two starts and the later of the two ends. The file name is always
// a's; the two locations are assumed, without checking, to share a file.
func Combine(a, b Location) Location {
	start := a.Start
	if b.Start.Before(start) {
		start = b.Start
	}
	end := a.End
	if end.Before(b.End) {
		end = b.End
	}
	return Location{File: a.File, Start: start, End: end}
}
