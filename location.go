package whosetit

import (
	"fmt"
	"strings"
)

// Location is where a new property was first assigned.
type Location struct {
	Property string `json:"property"`
	// Filename is the source file of the call site, or a placeholder for
	// code evaluated without a name.
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	// Column is 1-based; 0 means it could not be resolved.
	Column int `json:"column"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%s:%d:%d)", l.Property, l.Filename, l.Line, l.Column)
}

// Locations is the append-only list of records of a Handle, in the order the
// writes happened. A *Locations obtained from a handle keeps observing new
// records.
type Locations struct {
	records []Location
}

// Len returns the number of records so far.
func (l *Locations) Len() int {
	return len(l.records)
}

// At returns the i-th record. It panics if i is out of range.
func (l *Locations) At(i int) Location {
	return l.records[i]
}

// All returns a copy of the records.
func (l *Locations) All() []Location {
	out := make([]Location, len(l.records))
	copy(out, l.records)
	return out
}

// Properties returns the recorded property names in order.
func (l *Locations) Properties() []string {
	out := make([]string, len(l.records))
	for i, r := range l.records {
		out[i] = r.Property
	}
	return out
}

func (l *Locations) String() string {
	var sb strings.Builder
	for i, r := range l.records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}

func (l *Locations) append(loc Location) {
	l.records = append(l.records, loc)
}
