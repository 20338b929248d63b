/*
Package book provides the HTTP interface for the library catalogue.

# Routing Strategy

  - Public (v1): Listing and detail views (GET /books...). Hidden books are
    never served here.
  - Restricted: Create, update, and delete require a librarian session; the
    role middleware is applied when mounting this router. The back-office
    listing includes hidden books.
*/
package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/minhle/folio/internal/platform/request"
	"github.com/minhle/folio/internal/platform/respond"
	"github.com/minhle/folio/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalogue operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new book [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes returns the unauthenticated read surface.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listBooks)
	router.Get("/{identifier}", handler.getBook)

	return router
}

// AdminRoutes returns the mutation surface. The caller wraps it with
// authentication and role middleware when mounting.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAllBooks)
	router.Post("/", handler.createBook)
	router.Patch("/{id}", handler.updateBook)
	router.Delete("/{id}", handler.deleteBook)

	return router
}

// # Public Endpoints

/*
GET /api/v1/books.

Description: Retrieves a paginated list of visible books.
Supports searching by title/author and filtering by category.

Request:
  - q: string (Full-text search)
  - category: string (Category UUID)
  - limit, page: int

Response:
  - 200: []Book: Paginated list
*/
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	handler.list(writer, request, false)
}

/*
GET /api/v1/books/{identifier}.

Description: Retrieves a fully hydrated book using its UUID or slug.
Chapters are included, sorted ascending by page number.

Response:
  - 200: Book: Success
  - 404: ErrNotFound: Book not found
*/
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	found, err := handler.service.GetBook(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// # Back-Office Endpoints

// GET /api/v1/admin/books. Same shape as the public list, drafts included.
func (handler *Handler) listAllBooks(writer http.ResponseWriter, request *http.Request) {
	handler.list(writer, request, true)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request, includeHidden bool) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query:         queryParams.Get("q"),
		IncludeHidden: includeHidden,
	}
	if categoryID := queryParams.Get("category"); categoryID != "" {
		filter.CategoryID = &categoryID
	}

	books, total, err := handler.service.ListBooks(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
POST /api/v1/admin/books.

Description: Registers a new document. Slugs are generated from the title.

Request (Body):
  - Book JSON object (title, url, content_type required)

Response:
  - 201: Book: Created object
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 422: ErrUnprocessable: Schema out of date (carries remediation SQL)
*/
func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input Book
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateBook(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PATCH /api/v1/admin/books/{id}.

Description: Updates catalogue metadata, including the visibility flag.

Response:
  - 200: Book: Updated entity
  - 404: ErrNotFound: Book not found
  - 422: ErrUnprocessable: Schema out of date (carries remediation SQL)
*/
func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	var input Book
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ID = requestutil.ID(request, "id")

	if err := handler.service.UpdateBook(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/admin/books/{id}.

Description: Deletes a book and its chapters.

Response:
  - 204: No Content: Success
  - 404: ErrNotFound: Book not found
*/
func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteBook(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
