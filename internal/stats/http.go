// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

// Package stats provides the HTTP interface for the visit counter.
package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/minhle/folio/internal/platform/request"
	"github.com/minhle/folio/internal/platform/respond"
	"github.com/minhle/folio/internal/platform/validate"
)

// Handler implements the HTTP layer for the visit counter.
type Handler struct {
	service *Service
}

// NewHandler constructs a new stats [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the counter endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/visit", handler.recordVisit)
	router.Get("/visits", handler.total)

	return router
}

type visitInput struct {
	VisitorID string `json:"visitor_id"`
}

type visitOutput struct {
	Total int64 `json:"total"`
}

/*
POST /api/v1/stats/visit.

Description: Reports a visit. The first report per visitor session
increments the counter; repeats just read it back. Store failures degrade
to the last readable total, never to an error.

Request (Body):
  - visitor_id: string (opaque per-session identifier)

Response:
  - 200: {total}: The visit total to display
*/
func (handler *Handler) recordVisit(writer http.ResponseWriter, request *http.Request) {
	var input visitInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("visitor_id", input.VisitorID).MaxLen("visitor_id", input.VisitorID, 128)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	total := handler.service.RecordVisit(request.Context(), input.VisitorID)
	respond.OK(writer, visitOutput{Total: total})
}

// GET /api/v1/stats/visits. Reads the counter without recording anything.
func (handler *Handler) total(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, visitOutput{Total: handler.service.Total(request.Context())})
}
