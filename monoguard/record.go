package monoguard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLevel is matched by every ParseError.
var ErrInvalidLevel = errors.New("invalid level")

// Record is one parsed report line. It is never mutated after parsing.
type Record []int

// ParseError describes a line that could not be turned into a Record.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v %q: %v", e.Line, ErrInvalidLevel, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidLevel, e.Err}
}

// ParseRecord splits line on whitespace and parses every token as a level.
// Levels are base-10 and must fit in an unsigned 32-bit integer.
func ParseRecord(lineNo int, line string) (Record, error) {
	fields := strings.Fields(line)
	record := make(Record, 0, len(fields))
	for _, v := range fields {
		d, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Token: v, Err: err}
		}
		record = append(record, int(d))
	}
	return record, nil
}
