// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package assist

import (
	"context"
	"log/slog"

	"github.com/minhle/folio/internal/platform/validate"
)

// PageSource supplies the extracted text of a reader session's current
// page, so assistant calls can be grounded by session ID instead of the
// client re-uploading page text.
type PageSource interface {
	PageText(context context.Context, sessionID string) (string, error)
}

// # Service Layer

// Service orchestrates assistant calls, resolving page context from live
// reader sessions.
type Service struct {
	assistant Assistant
	pages     PageSource
	logger    *slog.Logger
}

// NewService constructs a new assist [Service].
func NewService(assistant Assistant, pages PageSource, logger *slog.Logger) *Service {
	return &Service{
		assistant: assistant,
		pages:     pages,
		logger:    logger,
	}
}

/*
Analyze runs a single-turn instruction against a session's current page.

Parameters:
  - context: context.Context
  - sessionID: string (reader session supplying the page text)
  - instruction: string

Returns:
  - string: The assistant's answer
  - error: Validation, session lookup, or provider failures
*/
func (service *Service) Analyze(context context.Context, sessionID, instruction string) (string, error) {
	validator := &validate.Validator{}
	validator.Required("instruction", instruction)
	if err := validator.Err(); err != nil {
		return "", err
	}

	pageText, err := service.pages.PageText(context, sessionID)
	if err != nil {
		return "", err
	}

	return service.assistant.Analyze(context, pageText, instruction)
}

/*
Chat continues a conversation grounded in a session's current page.

Parameters:
  - context: context.Context
  - sessionID: string
  - history: []Turn (ordered prior turns)
  - message: string (the new user message)

Returns:
  - string: The assistant's reply
  - error: Validation, session lookup, or provider failures
*/
func (service *Service) Chat(context context.Context, sessionID string, history []Turn, message string) (string, error) {
	validator := &validate.Validator{}
	validator.Required("message", message)
	if err := validator.Err(); err != nil {
		return "", err
	}

	pageText, err := service.pages.PageText(context, sessionID)
	if err != nil {
		return "", err
	}

	return service.assistant.Chat(context, history, message, pageText)
}

/*
AnalyzeSources answers a prompt grounded in externally supplied sources.
No reader session is involved; the caller provides all grounding.

Parameters:
  - context: context.Context
  - sources: []Source (at least one, each typed text or url)
  - prompt: string
  - history: []Turn

Returns:
  - string: The assistant's answer
  - error: Validation or provider failures
*/
func (service *Service) AnalyzeSources(context context.Context, sources []Source, prompt string, history []Turn) (string, error) {
	validator := &validate.Validator{}
	validator.Required("prompt", prompt)
	validator.Custom("sources", len(sources) == 0, "at least one source is required")
	for _, source := range sources {
		if source.Type != SourceText && source.Type != SourceURL {
			validator.Custom("sources", true, "source type must be 'text' or 'url'")
			break
		}
	}
	if err := validator.Err(); err != nil {
		return "", err
	}

	return service.assistant.AnalyzeSources(context, sources, prompt, history)
}
