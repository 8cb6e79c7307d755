package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "Go 1.25 has been released",
			want: "Go 1.25 has been released",
		},
		{
			name: "paragraph tags stripped",
			in:   "<p>Go 1.25 has been released</p>",
			want: "Go 1.25 has been released",
		},
		{
			name: "nested markup",
			in:   `<p>Read the <a href="https://go.dev">announcement</a> today</p>`,
			want: "Read the announcement today",
		},
		{
			name: "entities decoded",
			in:   "Ampersands &amp; angle brackets",
			want: "Ampersands & angle brackets",
		},
		{
			name: "block elements collapse to single spaces",
			in:   "<div>first line</div>\n<div>second   line</div>",
			want: "first line second line",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  padded  ",
			want: "padded",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plain(tt.in))
		})
	}
}
