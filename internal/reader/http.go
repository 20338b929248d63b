/*
Package reader provides the HTTP interface for the reading engine.

# Routing Strategy

All session routes are public: reading does not require an account. A
session ID is an unguessable UUID handed out on open; it is the only
capability needed to drive the session.
*/
package reader

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/minhle/folio/internal/platform/request"
	"github.com/minhle/folio/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for reader sessions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reader [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the session endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/sessions", handler.openSession)

	router.Route("/sessions/{id}", func(session chi.Router) {
		session.Get("/", handler.getSession)
		session.Delete("/", handler.closeSession)

		session.Post("/advance", handler.advance)
		session.Post("/retreat", handler.retreat)
		session.Post("/chapters/{chapterID}", handler.selectChapter)
		session.Post("/zoom", handler.zoom)
		session.Post("/resize", handler.resize)
		session.Post("/presentation", handler.togglePresentation)
		session.Post("/sidebar", handler.toggleSidebar)
		session.Post("/reset-source", handler.resetSource)
	})

	return router
}

// # Session Lifecycle Endpoints

type openSessionInput struct {
	Book    string  `json:"book"`
	Chapter *string `json:"chapter,omitempty"`
}

/*
POST /api/v1/reader/sessions.

Description: Opens a reader session for a book, optionally landing on a
chapter. Paginated sources are loaded before the response so the first view
carries the page count; a load failure is reported inside the session
state, not as an HTTP error.

Request (Body):
  - book: string (UUID or slug)
  - chapter: string (chapter UUID, optional)

Response:
  - 201: View: Session snapshot with layout
  - 404: ErrNotFound: Book or chapter not found
*/
func (handler *Handler) openSession(writer http.ResponseWriter, request *http.Request) {
	var input openSessionInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Open(request.Context(), input.Book, input.Chapter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, view)
}

// GET /api/v1/reader/sessions/{id}. Returns the current view.
func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	handler.respondView(writer, request, handler.service.Get)
}

// DELETE /api/v1/reader/sessions/{id}. Closes the session; idempotent.
func (handler *Handler) closeSession(writer http.ResponseWriter, request *http.Request) {
	handler.service.Close(request.Context(), requestutil.ID(request, "id"))
	respond.NoContent(writer)
}

// # Navigation Endpoints

// POST /api/v1/reader/sessions/{id}/advance. Steps forward (1 page, or 2
// past the cover in spread mode) and clamps at the last page.
func (handler *Handler) advance(writer http.ResponseWriter, request *http.Request) {
	handler.respondView(writer, request, handler.service.Advance)
}

// POST /api/v1/reader/sessions/{id}/retreat. Steps backward with the
// cover-preserving asymmetric step.
func (handler *Handler) retreat(writer http.ResponseWriter, request *http.Request) {
	handler.respondView(writer, request, handler.service.Retreat)
}

/*
POST /api/v1/reader/sessions/{id}/chapters/{chapterID}.

Description: Jumps to a chapter. Chapters with an override source switch
the active document; others only move the page.

Response:
  - 200: View: Updated snapshot
  - 404: ErrNotFound: Session or chapter not found
*/
func (handler *Handler) selectChapter(writer http.ResponseWriter, request *http.Request) {
	sessionID := requestutil.ID(request, "id")
	chapterID := requestutil.ID(request, "chapterID")

	view, err := handler.service.SelectChapter(request.Context(), sessionID, chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// POST /api/v1/reader/sessions/{id}/reset-source. Manual recovery after a
// load failure: back to the book's primary source at page 1.
func (handler *Handler) resetSource(writer http.ResponseWriter, request *http.Request) {
	handler.respondView(writer, request, handler.service.ResetToDefaultSource)
}

// # Zoom & Geometry Endpoints

type zoomInput struct {
	Direction string `json:"direction"` // "in" | "out"
}

// POST /api/v1/reader/sessions/{id}/zoom. Steps the scale, clamped to the
// supported range.
func (handler *Handler) zoom(writer http.ResponseWriter, request *http.Request) {
	var input zoomInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Zoom(request.Context(), requestutil.ID(request, "id"), input.Direction)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

type resizeInput struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

/*
POST /api/v1/reader/sessions/{id}/resize.

Description: Reports observed container dimensions. Crossing the spread
breakpoint switches the view mode automatically for paginated documents.

Request (Body):
  - width, height: number (logical units, positive)

Response:
  - 200: View: Updated snapshot
  - 400: Validation: Non-positive dimensions
*/
func (handler *Handler) resize(writer http.ResponseWriter, request *http.Request) {
	var input resizeInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Resize(request.Context(), requestutil.ID(request, "id"), input.Width, input.Height)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// POST /api/v1/reader/sessions/{id}/presentation. Flips fullscreen reading;
// entering hides the sidebar, exiting restores it.
func (handler *Handler) togglePresentation(writer http.ResponseWriter, request *http.Request) {
	handler.respondView(writer, request, handler.service.TogglePresentation)
}

// POST /api/v1/reader/sessions/{id}/sidebar. Flips the chapter sidebar.
func (handler *Handler) toggleSidebar(writer http.ResponseWriter, request *http.Request) {
	handler.respondView(writer, request, handler.service.ToggleSidebar)
}

func (handler *Handler) respondView(
	writer http.ResponseWriter,
	request *http.Request,
	operation func(ctx context.Context, sessionID string) (*View, error),
) {
	view, err := operation(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}
