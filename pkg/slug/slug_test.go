// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhle/folio/pkg/slug"
)

/*
TestFrom verifies slug generation for typical book and category names.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_title", "Moby Dick", "moby-dick"},
		{"accented", "Les Misérables", "les-miserables"},
		{"punctuation", "Alice's Adventures in Wonderland!", "alice-s-adventures-in-wonderland"},
		{"multi_space", "War   and   Peace", "war-and-peace"},
		{"leading_trailing", "  The Odyssey  ", "the-odyssey"},
		{"digits", "Catch-22", "catch-22"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
