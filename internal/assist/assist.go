// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

/*
Package assist integrates the reading assistant.

The assistant answers questions about the page being read, carries a short
conversation, and can ground its answers in externally supplied sources.
The provider is abstracted behind [Assistant]: the real implementation
talks to OpenAI, and a disabled one answers every call with a static
"not configured" message when no API key is present.
*/
package assist

import "context"

// # Conversation Types

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message of an assistant conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// SourceType tags how a grounding source's content is interpreted.
type SourceType string

const (
	// SourceText carries literal grounding text.
	SourceText SourceType = "text"

	// SourceURL points at a document to fetch and ground on.
	SourceURL SourceType = "url"
)

// Source is one grounding input for source-based analysis.
type Source struct {
	Type    SourceType `json:"type"`
	Content string     `json:"content"`
}

// # Provider Contract

// Assistant is the text-generation collaborator behind the reader.
type Assistant interface {
	// Analyze answers a single-turn instruction about the given page text.
	Analyze(context context.Context, contextText, instruction string) (string, error)

	// Chat continues a conversation about the given page text.
	Chat(context context.Context, history []Turn, message, contextText string) (string, error)

	// AnalyzeSources answers a prompt grounded in the supplied sources,
	// optionally continuing a conversation.
	AnalyzeSources(context context.Context, sources []Source, prompt string, history []Turn) (string, error)
}
