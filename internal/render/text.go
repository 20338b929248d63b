// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package render

import "strings"

// Text-showing operators of the PDF content stream grammar.
// ' and " are the move-and-show shorthands.
var textShowOperators = map[string]bool{
	"Tj": true,
	"TJ": true,
	"'":  true,
	"\"": true,
}

// Operators that move the text cursor to a new line.
var newlineOperators = map[string]bool{
	"Td": true,
	"TD": true,
	"T*": true,
}

/*
contentText scans a decoded content stream and collects the literal string
operands of text-showing operators.

Description: This is a token-level pass, not a full interpreter: fonts,
encodings, and positioning are ignored, hex strings are skipped, and TJ
kerning numbers are dropped. Good enough to ground the assistant on what a
page says.
*/
func contentText(stream []byte) string {
	var out strings.Builder
	var pending []string

	i := 0
	for i < len(stream) {
		ch := stream[i]

		switch {
		case ch == '(':
			literal, next := parseLiteralString(stream, i)
			pending = append(pending, literal)
			i = next

		case ch == '<':
			// Hex string or dictionary opener. Skip to the closing bracket;
			// hex-encoded text is rare in the catalogue's documents.
			i = skipAngleBracket(stream, i)

		case ch == '[' || ch == ']':
			i++

		case ch == '%':
			for i < len(stream) && stream[i] != '\n' {
				i++
			}

		case isOperatorStart(ch):
			operator, next := parseToken(stream, i)
			i = next

			switch {
			case textShowOperators[operator]:
				if len(pending) > 0 {
					out.WriteString(strings.Join(pending, ""))
					out.WriteByte(' ')
				}
				pending = pending[:0]
			case newlineOperators[operator]:
				if out.Len() > 0 {
					out.WriteByte('\n')
				}
				pending = pending[:0]
			default:
				pending = pending[:0]
			}

		default:
			i++
		}
	}

	return strings.TrimSpace(out.String())
}

// parseLiteralString reads a ( ... ) string starting at the opening
// parenthesis, honoring nesting and backslash escapes. Returns the decoded
// text and the index just past the closing parenthesis.
func parseLiteralString(stream []byte, start int) (string, int) {
	var literal strings.Builder
	depth := 1

	i := start + 1
	for i < len(stream) && depth > 0 {
		ch := stream[i]
		switch ch {
		case '\\':
			if i+1 < len(stream) {
				literal.WriteByte(unescape(stream[i+1]))
				i += 2
				continue
			}
			i++
		case '(':
			depth++
			literal.WriteByte(ch)
			i++
		case ')':
			depth--
			if depth > 0 {
				literal.WriteByte(ch)
			}
			i++
		default:
			literal.WriteByte(ch)
			i++
		}
	}

	return literal.String(), i
}

func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return ch
	}
}

func skipAngleBracket(stream []byte, start int) int {
	i := start + 1
	for i < len(stream) && stream[i] != '>' {
		i++
	}
	if i < len(stream) {
		i++
	}
	return i
}

func isOperatorStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '\'' || ch == '"'
}

func parseToken(stream []byte, start int) (string, int) {
	i := start
	for i < len(stream) && isTokenByte(stream[i]) {
		i++
	}
	if i == start {
		return string(stream[start]), start + 1
	}
	return string(stream[start:i]), i
}

func isTokenByte(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '*' || ch == '\'' || ch == '"'
}
