package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxDetailsLength = 512

// ExtractErrorMessage pulls a human readable message out of an upstream error
// body. Both upstreams use {"error": {"message": ...}} or {"error": "CODE"};
// anything else falls back to the trimmed body text.
func ExtractErrorMessage(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := extractFromErrorField(payload.Error); msg != "" {
			return msg
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return truncate(strings.TrimSpace(string(body)), maxDetailsLength)
}

func extractFromErrorField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var code string
	if err := json.Unmarshal(raw, &code); err == nil {
		return code
	}
	var obj struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Message != "" {
			return obj.Message
		}
		return obj.Type
	}
	return ""
}

// EscapeFormulaString escapes a value for use inside a single-quoted
// formula string literal.
func EscapeFormulaString(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `'`, `\'`)
}

// EscapeRawQuery percent-encodes the bytes of a pre-encoded query string that
// cannot appear literally in a URL query. Existing escapes are left alone, so
// the decoded parameters are unchanged and a '#' is no longer read as the
// start of a fragment.
func EscapeRawQuery(query string) string {
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		if shouldEscapeQueryByte(c) {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func shouldEscapeQueryByte(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return true
	}
	switch c {
	case '#', '"', '<', '>', '\\', '^', '`', '{', '|', '}':
		return true
	}
	return false
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
