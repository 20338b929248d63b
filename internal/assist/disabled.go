// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package assist

import "context"

// missingKeyMessage is the static answer served when no API key is
// configured. No network call is ever attempted.
const missingKeyMessage = "The reading assistant is not configured. Set OPENAI_API_KEY to enable it."

// DisabledAssistant implements [Assistant] when no API key is present.
// Every call degrades to the same static message instead of failing, so the
// reader UI stays functional without the feature.
type DisabledAssistant struct{}

// NewDisabledAssistant constructs the no-key assistant.
func NewDisabledAssistant() *DisabledAssistant {
	return &DisabledAssistant{}
}

func (DisabledAssistant) Analyze(context.Context, string, string) (string, error) {
	return missingKeyMessage, nil
}

func (DisabledAssistant) Chat(context.Context, []Turn, string, string) (string, error) {
	return missingKeyMessage, nil
}

func (DisabledAssistant) AnalyzeSources(context.Context, []Source, string, []Turn) (string, error) {
	return missingKeyMessage, nil
}
