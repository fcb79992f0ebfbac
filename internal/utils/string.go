package utils

import (
	"strings"
	"unicode"
)

// IsSeparator checks if a rune may appear inside a dictionary word
func IsSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '\'' || r == '.'
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks for anything other than letters, digits and
// word separators
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsRepetitive checks if a string is one character repeated 3+ times
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

// IsValidInput checks if a query is worth a dictionary lookup.
// Rejects empty strings, bare numbers, special characters and repetitive input.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}

// SplitPhrase splits a phrase on whitespace, dropping empty tokens.
func SplitPhrase(phrase string, maxWords int) []string {
	words := strings.Fields(phrase)
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	return words
}
