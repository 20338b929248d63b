// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package assist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"

	"github.com/minhle/folio/internal/platform/apperr"
)

// maxSourceBytes caps how much of a URL source is fetched for grounding.
const maxSourceBytes = 4 << 20 // 4 MiB

// maxContextChars truncates page text before it is sent to the provider.
const maxContextChars = 24000

const analyzeSystemPrompt = "You are a reading assistant embedded in a document reader. " +
	"Answer using the provided page text. Be concise and answer in the language of the question."

// OpenAIAssistant implements [Assistant] against the OpenAI Responses API.
type OpenAIAssistant struct {
	client openai.Client
	http   *http.Client
	logger *slog.Logger
}

// NewOpenAIAssistant constructs the production assistant.
func NewOpenAIAssistant(apiKey string, logger *slog.Logger) *OpenAIAssistant {
	return &OpenAIAssistant{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

/*
Analyze answers a single-turn instruction about the current page.

Parameters:
  - context: context.Context
  - contextText: string (extracted page text, possibly empty)
  - instruction: string (e.g. "Summarize this page")

Returns:
  - string: The assistant's answer
  - error: Provider failures, mapped to a service-unavailable error
*/
func (assistant *OpenAIAssistant) Analyze(context context.Context, contextText, instruction string) (string, error) {
	input := responses.ResponseInputParam{
		promptMessage(analyzeSystemPrompt, responses.EasyInputMessageRoleDeveloper),
		promptMessage(groundedInstruction(contextText, instruction), responses.EasyInputMessageRoleUser),
	}

	return assistant.generate(context, input, "analyze")
}

/*
Chat continues a conversation about the current page.

Description: History turns are replayed to the provider in order, with the
reader's "model" role mapped to the provider's "assistant" role. The page
text rides along with the newest message so the conversation follows the
reader through the document.

Parameters:
  - context: context.Context
  - history: []Turn (ordered, possibly empty)
  - message: string (the new user message)
  - contextText: string (extracted page text)

Returns:
  - string: The assistant's reply
  - error: Provider failures
*/
func (assistant *OpenAIAssistant) Chat(context context.Context, history []Turn, message, contextText string) (string, error) {
	input := responses.ResponseInputParam{
		promptMessage(analyzeSystemPrompt, responses.EasyInputMessageRoleDeveloper),
	}
	for _, turn := range history {
		input = append(input, promptMessage(turn.Text, providerRole(turn.Role)))
	}
	input = append(input, promptMessage(groundedInstruction(contextText, message), responses.EasyInputMessageRoleUser))

	return assistant.generate(context, input, "chat")
}

/*
AnalyzeSources answers a prompt grounded in external sources.

Description: Text sources are inlined verbatim. URL sources are fetched
over HTTP and inlined as grounding text; a source that cannot be fetched
is represented by a short failure note instead of aborting the call, so
one dead link does not take down the whole analysis.

Parameters:
  - context: context.Context
  - sources: []Source (text or url)
  - prompt: string
  - history: []Turn (optional prior conversation)

Returns:
  - string: The assistant's answer
  - error: Provider failures
*/
func (assistant *OpenAIAssistant) AnalyzeSources(context context.Context, sources []Source, prompt string, history []Turn) (string, error) {
	var grounding strings.Builder
	for index, source := range sources {
		fmt.Fprintf(&grounding, "--- Source %d ---\n", index+1)
		grounding.WriteString(assistant.sourceContent(context, source))
		grounding.WriteString("\n")
	}

	input := responses.ResponseInputParam{
		promptMessage("You are a research assistant. Ground every answer in the sources provided; "+
			"say so when the sources do not cover the question.", responses.EasyInputMessageRoleDeveloper),
	}
	for _, turn := range history {
		input = append(input, promptMessage(turn.Text, providerRole(turn.Role)))
	}
	input = append(input, promptMessage(grounding.String()+"\n"+prompt, responses.EasyInputMessageRoleUser))

	return assistant.generate(context, input, "analyze_sources")
}

// # Provider Plumbing

func (assistant *OpenAIAssistant) generate(context context.Context, input responses.ResponseInputParam, operation string) (string, error) {
	started := time.Now()

	response, err := assistant.client.Responses.New(context, responses.ResponseNewParams{
		Model: shared.ChatModelGPT5Mini,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: input,
		},
	})
	if err != nil {
		assistant.logger.Warn("assistant_call_failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return "", apperr.ServiceUnavailable("The assistant is temporarily unavailable. Please try again.")
	}

	assistant.logger.Info("assistant_call_completed",
		slog.String("operation", operation),
		slog.Duration("duration", time.Since(started)),
	)

	return response.OutputText(), nil
}

func (assistant *OpenAIAssistant) sourceContent(context context.Context, source Source) string {
	if source.Type != SourceURL {
		return source.Content
	}

	request, err := http.NewRequestWithContext(context, http.MethodGet, source.Content, nil)
	if err != nil {
		return fmt.Sprintf("(the source %s could not be requested)", source.Content)
	}

	response, err := assistant.http.Do(request)
	if err != nil {
		assistant.logger.Warn("assistant_source_fetch_failed",
			slog.String("url", source.Content),
			slog.String("error", err.Error()),
		)
		return fmt.Sprintf("(the source %s could not be fetched)", source.Content)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxSourceBytes))
	if err != nil {
		return fmt.Sprintf("(the source %s could not be read)", source.Content)
	}

	return fmt.Sprintf("From %s:\n%s", source.Content, body)
}

func promptMessage(text string, role responses.EasyInputMessageRole) responses.ResponseInputItemUnionParam {
	return responses.ResponseInputItemParamOfMessage(
		responses.ResponseInputMessageContentListParam{
			responses.ResponseInputContentParamOfInputText(text),
		},
		role,
	)
}

// providerRole maps the reader's conversation roles onto the provider's.
func providerRole(role Role) responses.EasyInputMessageRole {
	if role == RoleModel {
		return responses.EasyInputMessageRoleAssistant
	}
	return responses.EasyInputMessageRoleUser
}

func groundedInstruction(contextText, instruction string) string {
	if contextText == "" {
		return instruction
	}
	if len(contextText) > maxContextChars {
		contextText = contextText[:maxContextChars]
	}
	return "Current page text:\n" + contextText + "\n\n" + instruction
}
