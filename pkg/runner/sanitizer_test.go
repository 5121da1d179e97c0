package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int
		want    string
		wantErr error
	}{
		{name: "plain word", input: "aabb", want: "aabb"},
		{name: "whitespace kept", input: "aa\tbb", want: "aa\tbb"},
		{name: "ansi escape stripped", input: "a\x1b[31mb", want: "a[31mb"},
		{name: "null byte stripped", input: "a\x00b", want: "ab"},
		{name: "unicode kept", input: "αβγ", want: "αβγ"},
		{name: "too large", input: strings.Repeat("a", 11), limit: 10, wantErr: ErrInputTooLarge},
		{name: "default limit", input: strings.Repeat("a", DefaultMaxInputSize+1), wantErr: ErrInputTooLarge},
		{name: "at the limit", input: strings.Repeat("a", 10), limit: 10, want: strings.Repeat("a", 10)},
		{name: "invalid utf8", input: "a\xffb", wantErr: ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
