// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpulib "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/minhle/folio/internal/platform/apperr"
)

// maxDocumentBytes caps the download size of a single document.
const maxDocumentBytes = 256 << 20 // 256 MiB

// PDFRenderer implements [Renderer] for paginated PDF documents using pdfcpu.
type PDFRenderer struct {
	client *http.Client
	logger *slog.Logger
}

// NewPDFRenderer constructs the pdfcpu backed renderer.
func NewPDFRenderer(logger *slog.Logger) *PDFRenderer {
	return &PDFRenderer{
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}
}

/*
LoadDocument fetches a PDF from its source URL, validates it, and returns a
page-addressable handle.

Description: The document is downloaded fully into memory and parsed once;
page-level operations afterwards run against the parsed context without
further network access.

Parameters:
  - context: context.Context
  - sourceURL: string (absolute http/https URL)

Returns:
  - Document: Open handle with page count available
  - error: Download or parse failures, mapped to an unprocessable error
*/
func (renderer *PDFRenderer) LoadDocument(context context.Context, sourceURL string) (Document, error) {
	data, err := renderer.fetch(context, sourceURL)
	if err != nil {
		return nil, err
	}

	pdfContext, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		renderer.logger.Warn("document_parse_failed",
			slog.String("source_url", sourceURL),
			slog.String("error", err.Error()),
		)
		return nil, apperr.Unprocessable("The document could not be opened. It may be corrupt or not a PDF.")
	}

	pageCount := pdfContext.PageCount
	if pageCount < 1 {
		pageCount = 1
	}

	renderer.logger.Info("document_loaded",
		slog.String("source_url", sourceURL),
		slog.Int("page_count", pageCount),
	)

	return &pdfDocument{
		context:   pdfContext,
		pageCount: pageCount,
	}, nil
}

func (renderer *PDFRenderer) fetch(context context.Context, sourceURL string) ([]byte, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, apperr.Unprocessable("The document source URL is not valid.")
	}

	response, err := renderer.client.Do(request)
	if err != nil {
		return nil, apperr.Unprocessable(fmt.Sprintf("The document could not be downloaded: %v", err))
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, apperr.Unprocessable(fmt.Sprintf("The document source responded with status %d.", response.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxDocumentBytes))
	if err != nil {
		return nil, apperr.Unprocessable("The document download was interrupted.")
	}

	return data, nil
}

// pdfDocument is the open handle over a parsed pdfcpu context.
type pdfDocument struct {
	// pdfcpu contexts are not safe for concurrent page extraction.
	mu        sync.Mutex
	context   *model.Context
	pageCount int
}

func (document *pdfDocument) PageCount() int {
	return document.pageCount
}

/*
ExtractPageText returns best-effort plain text for one page.

Description: Decodes the page's content stream and collects the string
operands of Tj and TJ text-show operators. Layout is not reconstructed;
the output grounds the assistant, it is not a faithful rendition.

Parameters:
  - context: context.Context (honored for early cancellation only)
  - pageNumber: int (1-based)

Returns:
  - string: Collected page text, possibly empty
  - error: Extraction failures (callers may ignore them)
*/
func (document *pdfDocument) ExtractPageText(context context.Context, pageNumber int) (string, error) {
	if err := context.Err(); err != nil {
		return "", err
	}
	if pageNumber < 1 || pageNumber > document.pageCount {
		return "", fmt.Errorf("render: page %d out of range 1..%d", pageNumber, document.pageCount)
	}

	document.mu.Lock()
	reader, err := pdfcpulib.ExtractPageContent(document.context, pageNumber)
	document.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("render: extract page %d content: %w", pageNumber, err)
	}
	if reader == nil {
		return "", nil
	}

	stream, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("render: read page %d content: %w", pageNumber, err)
	}

	return contentText(stream), nil
}
