// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhle/folio/internal/library/book"
	"github.com/minhle/folio/pkg/pointer"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		reference string
		want      SourceKind
	}{
		{"pdf document", "https://files.folio.app/walden.pdf", KindPaginated},
		{"plain jpg", "https://files.folio.app/cover.jpg", KindStaticImage},
		{"uppercase extension", "https://files.folio.app/cover.JPG", KindStaticImage},
		{"query string stripped", "https://files.folio.app/cover.JPG?v=2", KindStaticImage},
		{"fragment stripped", "https://files.folio.app/scan.png#page=1", KindStaticImage},
		{"webp", "https://cdn.folio.app/plate.webp", KindStaticImage},
		{"gif", "https://cdn.folio.app/figure.gif", KindStaticImage},
		{"bmp", "https://cdn.folio.app/map.bmp", KindStaticImage},
		{"jpeg", "https://cdn.folio.app/plate.jpeg", KindStaticImage},
		{"image extension inside path only", "https://cdn.folio.app/png/manual.pdf", KindPaginated},
		{"no extension", "https://files.folio.app/walden", KindPaginated},
		{"trailing dot", "https://files.folio.app/walden.", KindPaginated},
		{"empty string", "", KindPaginated},
		{"query with image-looking value", "https://files.folio.app/doc.pdf?thumb=cover.jpg", KindPaginated},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Classify(testCase.reference))
		})
	}
}

func TestResolve_NoChapterOpensPrimarySource(t *testing.T) {
	owner := &book.Book{ID: "b1", URL: "https://files.folio.app/walden.pdf"}

	resolution := Resolve(owner, nil, "")

	assert.Equal(t, owner.URL, resolution.SourceURL)
	assert.Equal(t, KindPaginated, resolution.Kind)
	assert.Equal(t, 1, resolution.TargetPage)
	assert.True(t, resolution.SourceChanged)
}

func TestResolve_ChapterWithoutOverrideKeepsSource(t *testing.T) {
	owner := &book.Book{ID: "b1", URL: "https://files.folio.app/walden.pdf"}
	selected := &book.Chapter{ID: "c1", PageNumber: 42}

	resolution := Resolve(owner, selected, owner.URL)

	assert.Equal(t, owner.URL, resolution.SourceURL)
	assert.Equal(t, 42, resolution.TargetPage)
	assert.False(t, resolution.SourceChanged, "same source must not reload the document")
}

func TestResolve_ChapterWithOverrideSwitchesSource(t *testing.T) {
	owner := &book.Book{ID: "b1", URL: "https://files.folio.app/walden.pdf"}
	selected := &book.Chapter{
		ID:          "c1",
		PageNumber:  3,
		OverrideURL: pointer.To("https://files.folio.app/appendix.pdf"),
	}

	resolution := Resolve(owner, selected, owner.URL)

	assert.Equal(t, "https://files.folio.app/appendix.pdf", resolution.SourceURL)
	assert.Equal(t, 3, resolution.TargetPage)
	assert.True(t, resolution.SourceChanged)
}

func TestResolve_DefaultsTargetPageToOne(t *testing.T) {
	owner := &book.Book{ID: "b1", URL: "https://files.folio.app/walden.pdf"}
	selected := &book.Chapter{ID: "c1", PageNumber: 0}

	resolution := Resolve(owner, selected, owner.URL)

	assert.Equal(t, 1, resolution.TargetPage)
}
