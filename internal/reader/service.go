// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package reader

import (
	"context"
	"log/slog"
	"time"

	"github.com/minhle/folio/internal/library/book"
	"github.com/minhle/folio/internal/platform/apperr"
	"github.com/minhle/folio/internal/render"
	"github.com/minhle/folio/pkg/uuid"
)

// extractionTimeout bounds one background page-text extraction.
const extractionTimeout = 30 * time.Second

// BookSource supplies hydrated books to the reader.
type BookSource interface {
	GetBook(context context.Context, identifier string) (*book.Book, error)
}

// View is the read model returned to the client after every transition:
// a session snapshot plus the derived geometry and toolbar state.
type View struct {
	Session       Session `json:"session"`
	Layout        Layout  `json:"layout"`
	PageIndicator string  `json:"page_indicator"`
}

// # Service Layer

// Service orchestrates the reading engine: it opens sessions, drives
// navigation, and feeds page text to the assistant pipeline.
type Service struct {
	books    BookSource
	renderer render.Renderer
	sessions *Manager
	logger   *slog.Logger
}

// NewService constructs a new reader [Service].
func NewService(books BookSource, renderer render.Renderer, sessions *Manager, logger *slog.Logger) *Service {
	return &Service{
		books:    books,
		renderer: renderer,
		sessions: sessions,
		logger:   logger,
	}
}

// # Session Lifecycle

/*
Open creates a reader session for a book, optionally landing on a chapter.

Description: Resolves the active source, seeds the session, and for
paginated documents loads the document before returning so the first view
carries the page count. A load failure leaves the session open with a
user-visible error and its recovery actions; it is not fatal.

Parameters:
  - context: context.Context
  - bookIdentifier: string (UUID or slug)
  - chapterID: *string (optional landing chapter)

Returns:
  - *View: The session snapshot with layout and page indicator
  - error: ErrNotFound when the book or chapter does not exist
*/
func (service *Service) Open(context context.Context, bookIdentifier string, chapterID *string) (*View, error) {
	owner, err := service.books.GetBook(context, bookIdentifier)
	if err != nil {
		return nil, err
	}

	selected, err := findChapter(owner, chapterID)
	if err != nil {
		return nil, err
	}

	resolution := Resolve(owner, selected, "")
	session := newSession(uuid.New(), owner.ID, resolution)
	session.defaultSourceURL = owner.URL
	if selected != nil {
		session.ActiveChapterID = &selected.ID
	}

	service.sessions.Put(session)

	service.logger.Info("reader_session_opened",
		slog.String("session_id", session.ID),
		slog.String("book_id", owner.ID),
		slog.String("kind", string(resolution.Kind)),
	)

	if resolution.Kind == KindPaginated {
		service.loadDocument(context, session.ID, resolution.SourceURL)
		service.extractPageText(session.ID)
	}

	return service.view(session.ID)
}

// Get returns the current view of a live session.
func (service *Service) Get(_ context.Context, sessionID string) (*View, error) {
	return service.view(sessionID)
}

// Close drops a session. Closing an unknown or already-closed session is
// not an error.
func (service *Service) Close(_ context.Context, sessionID string) {
	service.sessions.Delete(sessionID)
	service.logger.Info("reader_session_closed", slog.String("session_id", sessionID))
}

// # Navigation

// Advance moves the session forward and re-extracts page text when the
// page actually changed.
func (service *Service) Advance(_ context.Context, sessionID string) (*View, error) {
	return service.navigate(sessionID, func(session *Session) bool { return session.Advance() })
}

// Retreat moves the session backward, with the same side effects as
// [Service.Advance].
func (service *Service) Retreat(_ context.Context, sessionID string) (*View, error) {
	return service.navigate(sessionID, func(session *Session) bool { return session.Retreat() })
}

func (service *Service) navigate(sessionID string, step func(session *Session) bool) (*View, error) {
	changed := false
	err := service.sessions.With(sessionID, func(session *Session) error {
		changed = step(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		service.extractPageText(sessionID)
	}

	return service.view(sessionID)
}

/*
SelectChapter jumps the session to a chapter of its book.

Description: A chapter with an override URL switches the active source and
reloads the document; one without an override only moves the page within
the current source. Either way the chapter becomes the session's active
chapter and page text is re-extracted.

Parameters:
  - context: context.Context
  - sessionID: string
  - chapterID: string

Returns:
  - *View: The updated snapshot
  - error: ErrNotFound when the session, book, or chapter is missing
*/
func (service *Service) SelectChapter(context context.Context, sessionID, chapterID string) (*View, error) {
	var bookID string
	err := service.sessions.With(sessionID, func(session *Session) error {
		bookID = session.BookID
		return nil
	})
	if err != nil {
		return nil, err
	}

	owner, err := service.books.GetBook(context, bookID)
	if err != nil {
		return nil, err
	}

	selected, err := findChapter(owner, &chapterID)
	if err != nil {
		return nil, err
	}

	var resolution Resolution
	err = service.sessions.With(sessionID, func(session *Session) error {
		resolution = Resolve(owner, selected, session.SourceURL)
		session.ActiveChapterID = &selected.ID

		if resolution.SourceChanged {
			session.adoptSource(resolution)
		} else {
			session.JumpTo(resolution.TargetPage)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("reader_chapter_selected",
		slog.String("session_id", sessionID),
		slog.String("chapter_id", chapterID),
		slog.Bool("source_changed", resolution.SourceChanged),
	)

	if resolution.SourceChanged && resolution.Kind == KindPaginated {
		service.loadDocument(context, sessionID, resolution.SourceURL)
	}
	service.extractPageText(sessionID)

	return service.view(sessionID)
}

/*
ResetToDefaultSource is the manual recovery action after a load failure:
the session returns to the owning book's primary source at page 1.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - *View: The updated snapshot
  - error: ErrNotFound when the session is missing
*/
func (service *Service) ResetToDefaultSource(context context.Context, sessionID string) (*View, error) {
	var resolution Resolution
	err := service.sessions.With(sessionID, func(session *Session) error {
		resolution = Resolution{
			SourceURL:     session.defaultSourceURL,
			Kind:          Classify(session.defaultSourceURL),
			TargetPage:    1,
			SourceChanged: true,
		}
		session.ActiveChapterID = nil
		session.adoptSource(resolution)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resolution.Kind == KindPaginated {
		service.loadDocument(context, sessionID, resolution.SourceURL)
		service.extractPageText(sessionID)
	}

	return service.view(sessionID)
}

// # Zoom, Geometry & Chrome

// Zoom adjusts the scale one step in the given direction ("in" or "out").
func (service *Service) Zoom(_ context.Context, sessionID, direction string) (*View, error) {
	err := service.sessions.With(sessionID, func(session *Session) error {
		switch direction {
		case "in":
			session.ZoomIn()
		case "out":
			session.ZoomOut()
		default:
			return apperr.ValidationError("Zoom direction must be 'in' or 'out'.")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return service.view(sessionID)
}

// Resize records observed container dimensions and applies the responsive
// view-mode switch.
func (service *Service) Resize(_ context.Context, sessionID string, width, height float64) (*View, error) {
	if width <= 0 || height <= 0 {
		return nil, apperr.ValidationError("Container dimensions must be positive.")
	}

	err := service.sessions.With(sessionID, func(session *Session) error {
		session.SetContainerSize(width, height)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return service.view(sessionID)
}

// TogglePresentation flips fullscreen reading mode.
func (service *Service) TogglePresentation(_ context.Context, sessionID string) (*View, error) {
	err := service.sessions.With(sessionID, func(session *Session) error {
		session.TogglePresentation()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return service.view(sessionID)
}

// ToggleSidebar flips the chapter sidebar.
func (service *Service) ToggleSidebar(_ context.Context, sessionID string) (*View, error) {
	err := service.sessions.With(sessionID, func(session *Session) error {
		session.ToggleSidebar()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return service.view(sessionID)
}

// # Internals

// loadDocument opens the active source's document and delivers the result
// to the session. The load runs outside the manager lock; by the time it
// completes the session may have moved on to another source, in which case
// the result is dropped.
func (service *Service) loadDocument(context context.Context, sessionID, sourceURL string) {
	document, loadErr := service.renderer.LoadDocument(context, sourceURL)

	applyErr := service.sessions.With(sessionID, func(session *Session) error {
		if session.SourceURL != sourceURL {
			// The session switched sources while we were loading.
			return nil
		}
		if loadErr != nil {
			session.OnDocumentError(loadErr.Error())
			return nil
		}
		session.OnDocumentReady(document)
		return nil
	})
	if applyErr != nil {
		service.logger.Debug("document_load_dropped", slog.String("session_id", sessionID))
	}
}

// extractPageText starts a best-effort background extraction for the
// session's current page. Failures are swallowed: extraction only feeds the
// assistant and must never block navigation. Stale results are discarded by
// page-tag comparison.
func (service *Service) extractPageText(sessionID string) {
	var (
		document render.Document
		tag      int
	)
	err := service.sessions.With(sessionID, func(session *Session) error {
		document = session.Document()
		tag = session.ExtractionTag()
		return nil
	})
	if err != nil || document == nil {
		return
	}

	go func() {
		extractionContext, cancel := context.WithTimeout(context.Background(), extractionTimeout)
		defer cancel()

		text, err := document.ExtractPageText(extractionContext, tag)
		if err != nil {
			service.logger.Debug("page_text_extraction_failed",
				slog.String("session_id", sessionID),
				slog.Int("page", tag),
				slog.String("error", err.Error()),
			)
			return
		}

		applyErr := service.sessions.With(sessionID, func(session *Session) error {
			if !session.ApplyExtraction(tag, text) {
				service.logger.Debug("stale_extraction_discarded",
					slog.String("session_id", sessionID),
					slog.Int("page", tag),
					slog.Int("current_page", session.CurrentPage),
				)
			}
			return nil
		})
		if applyErr != nil {
			// Session closed before the extraction finished.
			return
		}
	}()
}

// PageText returns the session's extracted text for assistant grounding.
func (service *Service) PageText(_ context.Context, sessionID string) (string, error) {
	var text string
	err := service.sessions.With(sessionID, func(session *Session) error {
		text = session.PageText
		return nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (service *Service) view(sessionID string) (*View, error) {
	var snapshot Session
	err := service.sessions.With(sessionID, func(session *Session) error {
		snapshot = *session
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &View{
		Session:       snapshot,
		Layout:        snapshot.Layout(),
		PageIndicator: snapshot.PageIndicator(),
	}, nil
}

func findChapter(owner *book.Book, chapterID *string) (*book.Chapter, error) {
	if chapterID == nil {
		return nil, nil
	}
	for index := range owner.Chapters {
		if owner.Chapters[index].ID == *chapterID {
			return &owner.Chapters[index], nil
		}
	}
	return nil, apperr.NotFound("chapter")
}
