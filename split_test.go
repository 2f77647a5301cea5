// File: caep/split_test.go
package caep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEscapeSplit(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, escapeSplit("a,b,c", ",", 0))
		assert.Equal(t, []string{"ABC", "123"}, escapeSplit("ABC 123", " ", 0))
	})

	t.Run("EscapedDelimiter", func(t *testing.T) {
		assert.Equal(t, []string{"A,B,C", "1,2,3"}, escapeSplit(`A\,B\,C,1\,2\,3`, ",", 0))
	})

	t.Run("EscapedBackslash", func(t *testing.T) {
		assert.Equal(t, []string{`A\BC`, "123"}, escapeSplit(`A\\BC 123`, " ", 0))
	})

	t.Run("SingleValue", func(t *testing.T) {
		assert.Equal(t, []string{"abc"}, escapeSplit("abc", ",", 0))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Equal(t, []string{""}, escapeSplit("", ",", 0))
	})

	t.Run("EmptyParts", func(t *testing.T) {
		assert.Equal(t, []string{"", "a", ""}, escapeSplit(",a,", ",", 0))
	})

	t.Run("MaxSplit", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c,d"}, escapeSplit("a,b,c,d", ",", 2))
		assert.Equal(t, []string{"a", "b:c"}, escapeSplit("a:b:c", ":", 1))
	})

	t.Run("TrailingBackslashPassedThrough", func(t *testing.T) {
		assert.Equal(t, []string{`a\`}, escapeSplit(`a\`, ",", 0))
	})
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "a,b", unescape(`a\,b`))
	assert.Equal(t, `a\b`, unescape(`a\\b`))
	assert.Equal(t, "ab", unescape(`a\b`))
	assert.Equal(t, "plain", unescape("plain"))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, `a\,b,c`, joinList([]string{"a,b", "c"}, ","))
	assert.Equal(t, "a b", joinList([]string{"a", "b"}, " "))
}

// Joining elements and splitting again with the same delimiter must yield
// the original elements, as long as they contain no raw backslashes.
func TestSplitJoinRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		delim := rapid.SampledFrom([]string{",", " ", ";", ":"}).Draw(t, "delim")
		parts := rapid.SliceOfN(
			rapid.StringMatching(`[a-zA-Z0-9,;: ._-]*`), 1, 8,
		).Draw(t, "parts")

		joined := joinList(parts, delim)
		assert.Equal(t, parts, escapeSplit(joined, delim, 0))
	})
}
