// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package assist

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/folio/internal/platform/apperr"
)

type fakePages struct {
	texts map[string]string
}

func (pages *fakePages) PageText(_ context.Context, sessionID string) (string, error) {
	if text, ok := pages.texts[sessionID]; ok {
		return text, nil
	}
	return "", apperr.NotFound("reader session")
}

// recordingAssistant captures what the service forwards to the provider.
type recordingAssistant struct {
	lastContext string
	lastHistory []Turn
}

func (assistant *recordingAssistant) Analyze(_ context.Context, contextText, _ string) (string, error) {
	assistant.lastContext = contextText
	return "analysis", nil
}

func (assistant *recordingAssistant) Chat(_ context.Context, history []Turn, _, contextText string) (string, error) {
	assistant.lastContext = contextText
	assistant.lastHistory = history
	return "reply", nil
}

func (assistant *recordingAssistant) AnalyzeSources(_ context.Context, _ []Source, _ string, history []Turn) (string, error) {
	assistant.lastHistory = history
	return "grounded answer", nil
}

func testAssist(assistant Assistant, pages PageSource) *Service {
	return NewService(assistant, pages, slog.New(slog.DiscardHandler))
}

func TestAnalyze_GroundsOnSessionPageText(t *testing.T) {
	recorder := &recordingAssistant{}
	service := testAssist(recorder, &fakePages{texts: map[string]string{"s1": "page five text"}})

	answer, err := service.Analyze(context.Background(), "s1", "Summarize this page")
	require.NoError(t, err)

	assert.Equal(t, "analysis", answer)
	assert.Equal(t, "page five text", recorder.lastContext)
}

func TestAnalyze_UnknownSession(t *testing.T) {
	service := testAssist(&recordingAssistant{}, &fakePages{texts: map[string]string{}})

	_, err := service.Analyze(context.Background(), "missing", "Summarize this page")
	require.Error(t, err)
}

func TestChat_ForwardsHistoryInOrder(t *testing.T) {
	recorder := &recordingAssistant{}
	service := testAssist(recorder, &fakePages{texts: map[string]string{"s1": "page text"}})

	history := []Turn{
		{Role: RoleUser, Text: "What is this chapter about?"},
		{Role: RoleModel, Text: "It describes life at the pond."},
	}

	_, err := service.Chat(context.Background(), "s1", history, "Who visits the cabin?")
	require.NoError(t, err)

	require.Len(t, recorder.lastHistory, 2)
	assert.Equal(t, RoleUser, recorder.lastHistory[0].Role)
	assert.Equal(t, RoleModel, recorder.lastHistory[1].Role)
}

func TestAnalyzeSources_RequiresSources(t *testing.T) {
	service := testAssist(&recordingAssistant{}, &fakePages{})

	_, err := service.AnalyzeSources(context.Background(), nil, "Compare these", nil)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestDisabledAssistant_StaticMessageWithoutNetwork(t *testing.T) {
	service := testAssist(NewDisabledAssistant(), &fakePages{texts: map[string]string{"s1": "page text"}})

	answer, err := service.Analyze(context.Background(), "s1", "Summarize this page")
	require.NoError(t, err)
	assert.Equal(t, missingKeyMessage, answer)

	reply, err := service.Chat(context.Background(), "s1", nil, "Hello")
	require.NoError(t, err)
	assert.Equal(t, missingKeyMessage, reply)

	grounded, err := service.AnalyzeSources(context.Background(), []Source{{Type: SourceText, Content: "x"}}, "Prompt", nil)
	require.NoError(t, err)
	assert.Equal(t, missingKeyMessage, grounded)
}
