// An error that saves the line number and the start of the line
// we could not split.

package samrec

import (
	"bytes"
	"strconv"
)

const maxMsgLen = 70

// MalformedError is returned when a data line has fewer than
// MinFields tab separated fields.
type MalformedError struct {
	Line   int    // line number, counting from 1. Zero if not known.
	NField int    // number of fields we found
	Start  string // the first part of the line
}

func firstPart(b []byte) string {
	l := len(b)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return string(b[:l])
}

func newMalformed(line []byte) *MalformedError {
	return &MalformedError{
		NField: bytes.Count(line, []byte{fieldSep}) + 1,
		Start:  firstPart(line),
	}
}

func (e *MalformedError) Error() string {
	var errmsg string
	if e.Line != 0 {
		errmsg = "Line: " + strconv.Itoa(e.Line) + " "
	}
	errmsg += "malformed SAM record, found " + strconv.Itoa(e.NField) +
		" fields, need at least " + strconv.Itoa(MinFields)
	errmsg += "\nLine starting with\n" + e.Start
	return errmsg
}
