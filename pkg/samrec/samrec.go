// 16 Oct 2026

// Package samrec knows just enough about lines in a SAM file to pull
// out the read name and the sequence and to say if a sequence is made
// of nucleotides.
package samrec

import (
	"bytes"
)

const (
	HeaderChar = '@'  // Header lines start with this
	fieldSep   = '\t' // and fields are tab separated

	NameField = 0 // QNAME, the read identifier
	SeqField  = 9 // SEQ

	MinFields = SeqField + 1 // A data line with fewer fields is broken
)

// Record holds the two fields we care about. They are slices into the
// line that was split, so they are only valid as long as that line is.
type Record struct {
	Name []byte
	Seq  []byte
}

// okSym[c] is true if c may appear in a sequence. Upper and lower case
// are both there, so we do not have to fold case.
var okSym = [256]bool{
	'a': true, 't': true, 'c': true, 'g': true, 'n': true,
	'A': true, 'T': true, 'C': true, 'G': true, 'N': true,
}

// ValidSeq returns true if every character in s is one of a, t, c, g or n,
// ignoring case. An empty sequence is valid.
func ValidSeq(s []byte) bool {
	for _, c := range s {
		if !okSym[c] {
			return false
		}
	}
	return true
}

// IsHeader says if a line is a header line.
func IsHeader(line []byte) bool {
	return len(line) > 0 && line[0] == HeaderChar
}

// Split takes a data line and returns the read name and sequence.
// White space, including tabs, is first removed from both ends of the
// line. We do not make a slice of all the fields, we just walk along
// the tabs until we have passed the sequence field. A blank line has
// one empty field, so it is malformed.
// If there are not enough fields, the error is a *MalformedError
// with the line number left at zero for the caller to fill in.
func Split(line []byte) (Record, error) {
	var rec Record
	line = bytes.TrimSpace(line)
	rest := line
	for i := 0; i < MinFields; i++ {
		ndx := bytes.IndexByte(rest, fieldSep)
		if ndx == -1 && i < SeqField {
			return rec, newMalformed(line)
		}
		var field []byte
		if ndx == -1 {
			field, rest = rest, nil
		} else {
			field, rest = rest[:ndx], rest[ndx+1:]
		}
		switch i {
		case NameField:
			rec.Name = field
		case SeqField:
			rec.Seq = field
		}
	}
	return rec, nil
}
