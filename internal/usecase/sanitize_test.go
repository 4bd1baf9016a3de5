package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeAlreadyCleanTextIsNoOp(t *testing.T) {
	input := "Plain ASCII text, nothing fancy."

	assert.Equal(t, input, Sanitize(input))
	assert.Equal(t, input, Sanitize(Sanitize(input)))
}

func TestSanitizeStripsNonASCII(t *testing.T) {
	assert.Equal(t, "smart quotes and a dash", Sanitize("“smart quotes” and a — dash"))
	assert.Equal(t, "cafe resume", Sanitize("café resumé"))
	assert.Equal(t, "hello", Sanitize("hello ☃"))
}

func TestSanitizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Sanitize("  a\t\tb \n c  "))
	assert.Equal(t, "line one line two", Sanitize("line one\nline two"))
}

func TestSanitizeEmptyAndGarbage(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "", Sanitize("   \t\n  "))
	assert.Equal(t, "", Sanitize("☃❤ "))
}
