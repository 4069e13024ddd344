// Package text implements string utilities and their HTTP endpoints. All
// functions operate on Unicode code points; bytes that are not valid UTF-8
// count as one character each and are never rewritten.
package text

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"utility-api/internal/apperrors"
)

const ellipsis = "..."

// units splits s into characters. A valid sequence is one code point; each
// byte of an invalid sequence is its own unit, kept verbatim so that no input
// is rewritten to U+FFFD.
func units(s string) []string {
	out := make([]string, 0, len(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, s[i:i+size])
		i += size
	}
	return out
}

// isSpace matches the ECMAScript WhiteSpace and LineTerminator set, which
// differs from unicode.IsSpace (U+FEFF is included, U+0085 is not).
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// upper and lower apply full Unicode case mappings ("ß" upper-cases to "SS").
// Casers are stateful, so a fresh one is made per call. Invalid bytes are
// passed through untouched.
func upper(s string) string { return mapValid(s, cases.Upper(language.Und).String) }
func lower(s string) string { return mapValid(s, cases.Lower(language.Und).String) }

// mapValid applies fn to each maximal run of valid UTF-8 in s.
func mapValid(s string, fn func(string) string) string {
	if utf8.ValidString(s) {
		return fn(s)
	}

	var b strings.Builder
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(fn(s[start:i]))
			b.WriteByte(s[i])
			start = i + 1
		}
		i += size
	}
	b.WriteString(fn(s[start:]))
	return b.String()
}

// Reverse returns s with its characters in reverse order.
func Reverse(s string) string {
	u := units(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := len(u) - 1; i >= 0; i-- {
		b.WriteString(u[i])
	}
	return b.String()
}

// IsPalindrome compares s to its reversal after lower-casing it and keeping
// only ASCII letters and digits.
func IsPalindrome(s string) bool {
	var b strings.Builder
	for _, r := range lower(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	return cleaned == Reverse(cleaned)
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.FieldsFunc(s, isSpace))
}

// TitleCase lower-cases s and upper-cases the first character of every
// space-separated token. Only the literal space separates tokens, so runs of
// spaces are preserved.
func TitleCase(s string) string {
	words := strings.Split(lower(s), " ")
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = upper(w[:size]) + w[size:]
	}
	return strings.Join(words, " ")
}

// Truncate shortens s to maxLength characters, the last three of which are an
// ellipsis. For maxLength below 3 the cut point is counted back from the end
// of s, clamped at the start.
func Truncate(s string, maxLength float64) (string, error) {
	if math.IsNaN(maxLength) || maxLength < 0 {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "truncate", "Second argument must be a non-negative number")
	}

	u := units(s)
	if float64(len(u)) <= maxLength {
		return s, nil
	}

	end := int(math.Trunc(maxLength - 3))
	if end < 0 {
		end = max(len(u)+end, 0)
	}
	return strings.Join(u[:end], "") + ellipsis, nil
}

// CountChar returns how many times the single character c occurs in s.
// Matching is case-sensitive.
func CountChar(s, c string) (int, error) {
	if len(units(c)) != 1 {
		return 0, apperrors.New(apperrors.CodeInvalidCharacter, "countChar", "Second argument must be a single character")
	}

	n := 0
	for _, u := range units(s) {
		if u == c {
			n++
		}
	}
	return n, nil
}

// RemoveDuplicates keeps the first occurrence of every character in s.
// Invalid bytes are deduplicated by byte value.
func RemoveDuplicates(s string) string {
	seen := make(map[string]struct{}, len(s))

	var b strings.Builder
	for _, u := range units(s) {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		b.WriteString(u)
	}
	return b.String()
}

func isSeparator(u string) bool {
	if u == "-" || u == "_" {
		return true
	}
	r, size := utf8.DecodeRuneInString(u)
	return size == len(u) && r != utf8.RuneError && isSpace(r)
}

// CamelCase removes runs of '-', '_' and whitespace, upper-casing the
// character after each run, then lower-cases the first character.
func CamelCase(s string) string {
	var out []string
	upperNext := false
	for _, u := range units(s) {
		if isSeparator(u) {
			upperNext = true
			continue
		}
		if upperNext {
			u = upper(u)
			upperNext = false
		}
		out = append(out, u)
	}

	if len(out) == 0 {
		return ""
	}
	out[0] = lower(out[0])
	return strings.Join(out, "")
}
