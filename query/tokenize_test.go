package query

import (
	"testing"

	"txkv/test"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      []string
		wantError error
	}{
		{name: "whitespace separated", input: "PUT  a\t1", want: []string{"PUT", "a", "1"}},
		{name: "single quotes", input: "GET 'a b'", want: []string{"GET", "a b"}},
		{name: "double quotes", input: `GET "a 'b'"`, want: []string{"GET", "a 'b'"}},
		{name: "empty quotes", input: "GET ''", want: []string{"GET", ""}},
		{name: "quotes inside word", input: "a'b c'd", want: []string{"ab cd"}},
		{name: "unterminated", input: "GET \"a", wantError: UnterminatedQuoteError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenize(tt.input)

			if tt.wantError != nil {
				test.AssertError(t, err, tt.wantError)
				return
			}

			test.AssertNoError(t, err)
			test.AssertSliceEqual(t, got, tt.want)
		})
	}
}
