// Package repository holds helpers shared by the store implementations.
package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE pattern matching term as a literal substring.
// The pattern uses backslash as its escape character.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
