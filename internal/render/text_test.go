// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentText_SimpleShowOperators(t *testing.T) {
	stream := []byte(`BT /F1 12 Tf (Hello ) Tj (World) Tj ET`)

	assert.Equal(t, "Hello  World", contentText(stream))
}

func TestContentText_ArrayShowOperator(t *testing.T) {
	// TJ interleaves kerning numbers with string segments; numbers are dropped.
	stream := []byte(`BT [(Call me Ish) -12 (mael.)] TJ ET`)

	assert.Equal(t, "Call me Ishmael.", contentText(stream))
}

func TestContentText_NewlineOnCursorMove(t *testing.T) {
	stream := []byte(`BT (first line) Tj 0 -14 Td (second line) Tj ET`)

	assert.Equal(t, "first line \nsecond line", contentText(stream))
}

func TestContentText_EscapedParentheses(t *testing.T) {
	stream := []byte(`BT (f\(x\) = x + 1) Tj ET`)

	assert.Equal(t, "f(x) = x + 1", contentText(stream))
}

func TestContentText_IgnoresHexStringsAndComments(t *testing.T) {
	stream := []byte("BT <48656C6C6F> Tj % a comment\n(visible) Tj ET")

	assert.Equal(t, "visible", contentText(stream))
}

func TestContentText_EmptyStream(t *testing.T) {
	assert.Equal(t, "", contentText(nil))
	assert.Equal(t, "", contentText([]byte("BT ET")))
}
