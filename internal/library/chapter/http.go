/*
Package chapter provides the HTTP interface for chapter jump targets.

# Routing Strategy

  - Public (v1): Chapter listing for a book (GET /books/{bookID}/chapters).
  - Restricted: Mutations require a librarian session; role middleware is
    applied when mounting the admin router.
*/
package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/minhle/folio/internal/platform/request"
	"github.com/minhle/folio/internal/platform/respond"
)

// Handler implements the HTTP layer for chapter operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes returns the unauthenticated read surface, mounted beneath
// /books/{bookID}.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listChapters)

	return router
}

// AdminRoutes returns the mutation surface. The caller wraps it with
// authentication and role middleware when mounting.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createChapter)
	router.Patch("/{id}", handler.updateChapter)
	router.Delete("/{id}", handler.deleteChapter)

	return router
}

/*
GET /api/v1/books/{bookID}/chapters.

Description: Lists a book's chapters sorted ascending by page number.

Response:
  - 200: []Chapter: Success
*/
func (handler *Handler) listChapters(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "bookID")

	chapters, err := handler.service.ListChapters(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapters)
}

/*
POST /api/v1/admin/chapters.

Description: Adds a jump target to a book. Page numbers are 1-based and
default to 1 when omitted.

Request (Body):
  - Chapter JSON object (book_id, title required)

Response:
  - 201: Chapter: Created object
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 422: ErrUnprocessable: Schema out of date (carries remediation SQL)
*/
func (handler *Handler) createChapter(writer http.ResponseWriter, request *http.Request) {
	var input Chapter
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateChapter(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PATCH /api/v1/admin/chapters/{id}.

Description: Updates a chapter's title, target page, or override source.
Sending a null override_url clears the override so the chapter reads from
the owning book again.

Response:
  - 200: Chapter: Updated entity
  - 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) updateChapter(writer http.ResponseWriter, request *http.Request) {
	var input Chapter
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ID = requestutil.ID(request, "id")

	if err := handler.service.UpdateChapter(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/admin/chapters/{id}.

Description: Removes a jump target. The owning book is untouched.

Response:
  - 204: No Content: Success
  - 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) deleteChapter(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteChapter(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
