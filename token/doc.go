// Package token provides the character-level machinery under the Hjson
// parser: the scanner cursor, the trivia (whitespace and comment)
// readers, and the literal readers for quoted strings, multiline
// strings, key names and quoteless values.
package token
