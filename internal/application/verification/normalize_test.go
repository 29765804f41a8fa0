package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"abc123", "abc123"},
		{"  abc123  ", "abc123"},
		{"\tabc123\r\n", "abc123"},
		{" abc123 ", "abc123"},
		{"ABC-123", "ABC-123"}, // case is preserved, tokens may be case-sensitive
		{"   ", ""},
		{"", ""},
	} {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{
		"abc123", "  abc123", "abc123\n", " \t ", "x y", "\x00token\x00", "ümlaut ",
	} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", in)
	}
}
