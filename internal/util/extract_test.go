package util

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText([]byte("Jane Doe\nEngineer"), "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer", text)
}

func TestExtractText_InvalidUTF8IsReplaced(t *testing.T) {
	text, err := ExtractText([]byte{'o', 'k', 0xff, 0xfe}, "application/msword")
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(text))
	assert.True(t, strings.HasPrefix(text, "ok"))
}

func TestExtractText_BrokenPDF(t *testing.T) {
	_, err := ExtractText([]byte("definitely not a pdf"), "application/pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestDetectMimeType(t *testing.T) {
	assert.Equal(t, "application/pdf", DetectMimeType("application/pdf", nil))
	assert.Equal(t, "application/pdf", DetectMimeType("", []byte("%PDF-1.7\n...")))
	assert.Contains(t, DetectMimeType("application/octet-stream", []byte("hello")), "text/plain")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", MaxResumeChars))
	assert.Equal(t, "", Truncate("anything", 0))

	long := strings.Repeat("a", MaxResumeChars+500)
	got := Truncate(long, MaxResumeChars)
	assert.Len(t, got, MaxResumeChars)
	assert.True(t, strings.HasPrefix(long, got))
}

func TestTruncate_MultiByte(t *testing.T) {
	in := strings.Repeat("é", 10)
	got := Truncate(in, 4)
	assert.Equal(t, "éééé", got)
	assert.True(t, utf8.ValidString(got))
}

func TestTruncate_BoundHolds(t *testing.T) {
	for _, n := range []int{0, 1, 11999, 12000, 12001, 30000} {
		in := strings.Repeat("x", n)
		got := Truncate(in, MaxResumeChars)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxResumeChars)
		assert.True(t, strings.HasPrefix(in, got))
		if n <= MaxResumeChars {
			assert.Equal(t, in, got)
		}
	}
}
