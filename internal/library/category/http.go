/*
Package category provides the HTTP interface for the shelving hierarchy.

# Routing Strategy

  - Public (v1): Listing, detail views, and browse (GET /categories...).
  - Restricted: Create, update, and delete require a librarian session;
    the role middleware is applied when mounting this router.
*/
package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/minhle/folio/internal/platform/request"
	"github.com/minhle/folio/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for category operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes returns the unauthenticated read surface.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCategories)
	router.Get("/browse", handler.browse)
	router.Get("/{identifier}", handler.getCategory)

	return router
}

// AdminRoutes returns the mutation surface. The caller wraps it with
// authentication and role middleware when mounting.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createCategory)
	router.Patch("/{id}", handler.updateCategory)
	router.Delete("/{id}", handler.deleteCategory)

	return router
}

// # Read Endpoints

/*
GET /api/v1/categories.

Description: Returns the entire category forest as a flat list with book counts.

Response:
  - 200: []Category: Success
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

/*
GET /api/v1/categories/browse?node={id}.

Description: Returns the library view for one node: child categories, books
shelved on the node, and the breadcrumb trail. Omitting the node parameter
browses the root shelf.

Request:
  - node: string (Category UUID, optional)

Response:
  - 200: BrowseResult: Success
  - 404: ErrNotFound: Node does not exist
*/
func (handler *Handler) browse(writer http.ResponseWriter, request *http.Request) {
	var nodeID *string
	if node := request.URL.Query().Get("node"); node != "" {
		nodeID = &node
	}

	result, err := handler.service.Browse(request.Context(), nodeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/categories/{identifier}.

Description: Retrieves a category using its UUID or unique slug.

Response:
  - 200: Category: Success
  - 404: ErrNotFound: Category not found
*/
func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	category, err := handler.service.GetCategory(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}

// # Back-Office Endpoints

/*
POST /api/v1/admin/categories.

Description: Creates a new shelf. The slug is generated from the name.

Request (Body):
  - Category JSON object (name required, parent_id optional)

Response:
  - 201: Category: Created object
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 404: ErrNotFound: Parent does not exist
*/
func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCategory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PATCH /api/v1/admin/categories/{id}.

Description: Updates the name or description of a shelf.

Response:
  - 200: Category: Updated entity
  - 404: ErrNotFound: Category not found
*/
func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ID = requestutil.ID(request, "id")

	if err := handler.service.UpdateCategory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/admin/categories/{id}.

Description: Deletes an empty shelf. A shelf that still holds books is
rejected with a conflict; no partial delete is attempted.

Response:
  - 204: No Content: Success
  - 404: ErrNotFound: Category not found
  - 409: ErrConflict: Books still shelved here
*/
func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteCategory(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
