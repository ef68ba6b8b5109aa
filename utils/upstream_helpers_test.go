package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestExtractErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"object with message", `{"error":{"type":"INVALID_REQUEST","message":"Unknown field name: \"Foo\""}}`, `Unknown field name: "Foo"`},
		{"object with type only", `{"error":{"type":"TABLE_NOT_FOUND"}}`, "TABLE_NOT_FOUND"},
		{"string code", `{"error":"NOT_FOUND"}`, "NOT_FOUND"},
		{"top level message", `{"message":"rate limited"}`, "rate limited"},
		{"plain text", "  bad gateway \n", "bad gateway"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExtractErrorMessage([]byte(tc.body)))
		})
	}
}

func TestExtractErrorMessage_TruncatesLongBodies(t *testing.T) {
	body := strings.Repeat("x", 2000)
	require.Len(t, ExtractErrorMessage([]byte(body)), maxDetailsLength)
}

func TestExtractErrorMessage_TruncatesOnRuneBoundary(t *testing.T) {
	// "é" is two bytes; the cut at maxDetailsLength lands inside one.
	body := "x" + strings.Repeat("é", maxDetailsLength)

	got := ExtractErrorMessage([]byte(body))
	require.True(t, utf8.ValidString(got))
	require.Len(t, got, maxDetailsLength-1)
}

func TestEscapeRawQuery(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"already encoded", "maxRecords=3&view=Grid%20view", "maxRecords=3&view=Grid%20view"},
		{"fragment marker", "filterByFormula={Name}='A#1'", "filterByFormula=%7BName%7D='A%231'"},
		{"space and brackets", "fields[]=Listing Name", "fields[]=Listing%20Name"},
		{"non ascii", "q=é", "q=%C3%A9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, EscapeRawQuery(tc.query))
		})
	}
}

func TestEscapeFormulaString(t *testing.T) {
	require.Equal(t, "rec123", EscapeFormulaString("rec123"))
	require.Equal(t, `O\'Brien`, EscapeFormulaString("O'Brien"))
	require.Equal(t, `a\\b\'c`, EscapeFormulaString(`a\b'c`))
}
