// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildOnePagePDF assembles a minimal single-page PDF whose content stream
// shows the given text. Object offsets are recorded while writing so the
// cross-reference table is always consistent.
func buildOnePagePDF(text string) []byte {
	var buffer bytes.Buffer
	buffer.WriteString("%PDF-1.4\n")

	offsets := make([]int, 6)
	writeObject := func(number int, body string) {
		offsets[number] = buffer.Len()
		fmt.Fprintf(&buffer, "%d 0 obj\n%s\nendobj\n", number, body)
	}

	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)

	writeObject(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObject(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObject(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>")
	writeObject(4, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	writeObject(5, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	startXref := buffer.Len()
	buffer.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for number := 1; number <= 5; number++ {
		fmt.Fprintf(&buffer, "%010d 00000 n \n", offsets[number])
	}
	fmt.Fprintf(&buffer, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", startXref)

	return buffer.Bytes()
}

func servePDF(t *testing.T, document []byte) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/pdf")
		writer.Write(document)
	}))
	t.Cleanup(server.Close)

	return server.URL
}

func TestLoadDocument_ExtractsPageText(t *testing.T) {
	sourceURL := servePDF(t, buildOnePagePDF("Call me Ishmael."))
	renderer := NewPDFRenderer(slog.New(slog.DiscardHandler))

	document, err := renderer.LoadDocument(context.Background(), sourceURL)
	require.NoError(t, err)
	assert.Equal(t, 1, document.PageCount())

	text, err := document.ExtractPageText(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, text, "Call me Ishmael.")
}

func TestExtractPageText_OutOfRange(t *testing.T) {
	sourceURL := servePDF(t, buildOnePagePDF("only page"))
	renderer := NewPDFRenderer(slog.New(slog.DiscardHandler))

	document, err := renderer.LoadDocument(context.Background(), sourceURL)
	require.NoError(t, err)

	_, err = document.ExtractPageText(context.Background(), 2)
	require.Error(t, err)

	_, err = document.ExtractPageText(context.Background(), 0)
	require.Error(t, err)
}

func TestLoadDocument_RejectsNonPDF(t *testing.T) {
	sourceURL := servePDF(t, []byte("<html>not a document</html>"))
	renderer := NewPDFRenderer(slog.New(slog.DiscardHandler))

	_, err := renderer.LoadDocument(context.Background(), sourceURL)
	require.Error(t, err)
}
