package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tailingsiq-backend/application/ports"
	"tailingsiq-backend/pkg/errors"
)

// fallbackResponse is returned when no knowledge base entry matches.
const fallbackResponse = "I don't have specific information about that topic yet. " +
	"In a production environment, this would connect to an LLM API like OpenAI's GPT " +
	"to provide more comprehensive answers. Would you like to know about tailings " +
	"management best practices or GISTM standards instead?"

// minKeywordLength excludes short words (a, the, is) from matching.
const minKeywordLength = 3

// ConversationMessage is one prior exchange in a query request. History is
// accepted for contract compatibility but does not influence matching.
type ConversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QueryRequest is the assistant query body.
type QueryRequest struct {
	Query               string                `json:"query" validate:"required"`
	ConversationHistory []ConversationMessage `json:"conversation_history"`
}

// QueryResponse is the assistant answer.
type QueryResponse struct {
	Response string `json:"response"`
}

// AssistantService answers questions by keyword matching against the
// knowledge base. Entries are scanned in load order and the first match
// wins, so broader entries earlier in the base shadow later ones.
type AssistantService struct {
	knowledge ports.KnowledgeRepository
	logger    *zap.Logger
}

// NewAssistantService creates a new assistant service.
func NewAssistantService(knowledge ports.KnowledgeRepository, logger *zap.Logger) *AssistantService {
	return &AssistantService{knowledge: knowledge, logger: logger}
}

// Query matches the question against the knowledge base and returns the
// first matching entry's answer, or the canned fallback.
func (s *AssistantService) Query(ctx context.Context, request QueryRequest) (response QueryResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("assistant query panicked", zap.Any("panic", r))
			response = QueryResponse{}
			err = errors.NewInternalError(fmt.Sprintf("Error processing query: %v", r))
		}
	}()

	userQuery := strings.ToLower(request.Query)

	for _, entry := range s.knowledge.Entries() {
		if matchesKeywords(entry.Question, userQuery) || matchesKeywords(entry.Answer, userQuery) {
			return QueryResponse{Response: entry.Answer}, nil
		}
	}
	return QueryResponse{Response: fallbackResponse}, nil
}

// matchesKeywords reports whether any sufficiently long whitespace-split
// word of text appears as a substring of the lowercased query.
func matchesKeywords(text, userQuery string) bool {
	for _, keyword := range strings.Split(strings.ToLower(text), " ") {
		if len(keyword) > minKeywordLength && strings.Contains(userQuery, keyword) {
			return true
		}
	}
	return false
}
