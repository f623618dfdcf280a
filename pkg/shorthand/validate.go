package shorthand

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrSyntax is wrapped by every Validate failure.
var ErrSyntax = errors.New("invalid border-radius value")

// Validate checks value against the shorthand grammar this package emits:
// one to four non-negative px or % terms, optionally followed by "/" and
// one to four more. A bare 0 is accepted as a term.
func Validate(value string) error {
	l := css.NewLexer(parse.NewInputString(value))

	counts := [2]int{}
	side := 0
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			return checkCounts(counts, side)
		case css.WhitespaceToken:
			continue
		case css.DelimToken:
			if string(data) != "/" || side == 1 || counts[0] == 0 {
				return fmt.Errorf("%w: unexpected %q", ErrSyntax, data)
			}
			side = 1
		case css.DimensionToken, css.PercentageToken, css.NumberToken:
			if err := checkTerm(tt, string(data)); err != nil {
				return err
			}
			counts[side]++
		default:
			return fmt.Errorf("%w: unexpected token %q", ErrSyntax, data)
		}
	}
}

func checkCounts(counts [2]int, side int) error {
	if counts[0] < 1 || counts[0] > 4 {
		return fmt.Errorf("%w: %d horizontal terms", ErrSyntax, counts[0])
	}
	if side == 1 && (counts[1] < 1 || counts[1] > 4) {
		return fmt.Errorf("%w: %d vertical terms", ErrSyntax, counts[1])
	}
	return nil
}

func checkTerm(tt css.TokenType, term string) error {
	if strings.HasPrefix(term, "-") {
		return fmt.Errorf("%w: negative term %q", ErrSyntax, term)
	}
	switch tt {
	case css.NumberToken:
		if strings.Trim(term, "0.+") != "" {
			return fmt.Errorf("%w: unitless term %q", ErrSyntax, term)
		}
	case css.DimensionToken:
		unit := strings.TrimLeft(term, "+0123456789.")
		if !strings.EqualFold(unit, "px") {
			return fmt.Errorf("%w: unsupported unit in %q", ErrSyntax, term)
		}
	}
	return nil
}
