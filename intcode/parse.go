package intcode

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError reports a program token that is not a base-10 integer.
type SyntaxError struct {
	Index int // position of the token in the program, 0-based
	Token string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("intcode: cell %d: bad token %q: %v", e.Index, e.Token, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// ParseProgram reads a comma-separated list of signed integers. Blank
// space around the list and around each token is ignored.
func ParseProgram(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &SyntaxError{Token: text, Err: strconv.ErrSyntax}
	}

	tokens := strings.Split(text, ",")
	cells := make([]int, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok {
				err = ne.Err
			}
			return nil, &SyntaxError{Index: i, Token: tok, Err: err}
		}
		cells[i] = n
	}
	return cells, nil
}

// Parse builds a machine from program text.
func Parse(text string, opts ...Option) (*Machine, error) {
	cells, err := ParseProgram(text)
	if err != nil {
		return nil, err
	}
	return New(cells, opts...), nil
}

// MustParse is like Parse but panics if the program text is malformed.
func MustParse(text string, opts ...Option) *Machine {
	m, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return m
}
