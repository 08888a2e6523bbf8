package query

import (
	"errors"
	"strings"
)

var UnterminatedQuoteError = errors.New("unterminated quoted string")

// tokenize splits input on whitespace. A pair of single or double quotes
// groups its contents, whitespace included, into one token.
func tokenize(input string) ([]string, error) {
	var tokens []string
	var current strings.Builder

	var quote byte
	quoted := false

	flush := func() {
		if current.Len() > 0 || quoted {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		quoted = false
	}

	for i := 0; i < len(input); i++ {
		c := input[i]

		switch {
		case quote != 0:
			if c == quote {
				quote = 0
				continue
			}
			current.WriteByte(c)

		case c == '\'' || c == '"':
			quote = c
			quoted = true

		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()

		default:
			current.WriteByte(c)
		}
	}

	if quote != 0 {
		return nil, UnterminatedQuoteError
	}

	flush()
	return tokens, nil
}
