/*
Package assist provides the HTTP interface for the reading assistant.

# Routing Strategy

Assistant routes are public, like the reader itself, but sit behind a
tighter rate limit applied when mounting since every call can reach a paid
provider.
*/
package assist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/minhle/folio/internal/platform/request"
	"github.com/minhle/folio/internal/platform/respond"
)

// Handler implements the HTTP layer for assistant operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new assist [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the assistant endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/analyze", handler.analyze)
	router.Post("/chat", handler.chat)
	router.Post("/sources", handler.analyzeSources)

	return router
}

type analyzeInput struct {
	SessionID   string `json:"session_id"`
	Instruction string `json:"instruction"`
}

type answerOutput struct {
	Answer string `json:"answer"`
}

/*
POST /api/v1/assist/analyze.

Description: Runs a single-turn instruction against the current page of a
reader session. With no API key configured the answer is a static
"not configured" message.

Request (Body):
  - session_id: string (reader session UUID)
  - instruction: string

Response:
  - 200: {answer}: Success
  - 404: ErrNotFound: Session not found
  - 503: ErrServiceUnavailable: Provider failure
*/
func (handler *Handler) analyze(writer http.ResponseWriter, request *http.Request) {
	var input analyzeInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	answer, err := handler.service.Analyze(request.Context(), input.SessionID, input.Instruction)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, answerOutput{Answer: answer})
}

type chatInput struct {
	SessionID string `json:"session_id"`
	History   []Turn `json:"history"`
	Message   string `json:"message"`
}

/*
POST /api/v1/assist/chat.

Description: Continues a conversation about a session's current page. The
client carries the conversation history; the server is stateless between
calls.

Request (Body):
  - session_id: string
  - history: []{role, text} (role is "user" or "model")
  - message: string

Response:
  - 200: {answer}: Success
  - 404: ErrNotFound: Session not found
*/
func (handler *Handler) chat(writer http.ResponseWriter, request *http.Request) {
	var input chatInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	answer, err := handler.service.Chat(request.Context(), input.SessionID, input.History, input.Message)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, answerOutput{Answer: answer})
}

type sourcesInput struct {
	Sources []Source `json:"sources"`
	Prompt  string   `json:"prompt"`
	History []Turn   `json:"history"`
}

/*
POST /api/v1/assist/sources.

Description: Answers a prompt grounded in caller-supplied sources. URL
sources are fetched server-side and inlined as grounding text.

Request (Body):
  - sources: []{type, content} (type is "text" or "url")
  - prompt: string
  - history: []{role, text} (optional)

Response:
  - 200: {answer}: Success
  - 400: Validation: Missing prompt or sources
*/
func (handler *Handler) analyzeSources(writer http.ResponseWriter, request *http.Request) {
	var input sourcesInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	answer, err := handler.service.AnalyzeSources(request.Context(), input.Sources, input.Prompt, input.History)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, answerOutput{Answer: answer})
}
