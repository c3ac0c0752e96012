package core

import "strings"

// delimiters are the characters that separate command-line tokens:
// space, tab, carriage return, newline and bell.
const delimiters = " \t\r\n\a"

// SplitLine splits a raw command line into tokens. Runs of delimiter
// characters collapse, so no token is ever empty and a line containing
// only delimiters yields no tokens at all. There is no quoting or
// escaping; a token is a maximal run of non-delimiter characters.
func SplitLine(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
}
