package validation

import (
	"strings"
	"unicode/utf8"
)

const (
	NameMinLength = 3
	NameMaxLength = 255
)

// IsBlank reports whether s is empty or consists only of white space.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// TrimmedLength counts the characters of s without leading and trailing white space.
func TrimmedLength(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// IsNameLengthValid reports whether the trimmed length of s is within
// [NameMinLength, NameMaxLength].
func IsNameLengthValid(s string) bool {
	length := TrimmedLength(s)
	return length >= NameMinLength && length <= NameMaxLength
}
