package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Springfield High Alumni", "springfield-high-alumni"},
		{"  Class of '99!  ", "class-of-99"},
		{"A --- B", "a-b"},
		{"Ünïcode Näme", "n-code-n-me"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestGenerateUniqueFilenameIsPrefixedAndUnique(t *testing.T) {
	a := GenerateUniqueFilename("avatars", "me.png")
	b := GenerateUniqueFilename("avatars", "me.png")

	assert.True(t, strings.HasPrefix(a, "avatars/"))
	assert.True(t, strings.HasSuffix(a, "-me.png"))
	assert.NotEqual(t, a, b)
}

func TestGenerateUniqueFilenameSanitizes(t *testing.T) {
	name := GenerateUniqueFilename("logos", "my logo (final).png")
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "(")
}
