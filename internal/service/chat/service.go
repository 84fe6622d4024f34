package chat

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/internal/rag/llm"
	apperrors "github.com/careconnect/careconnect-api/pkg/errors"
	"github.com/careconnect/careconnect-api/pkg/logger"
)

const (
	greetingReply = "Hi, I'm your API assistant. Feel free to ask me anything about the doctor appointment project!"

	noInfoReply = "I couldn't find any relevant information in the project description for your question. Please ask something else."

	systemPrompt = `You are an AI assistant for a doctor appointment API. Use ONLY the project data below to answer.

Rules:
- Only answer using the info in "Project Data".
- If data doesn't cover the question, say: "I don't have that information in the project description. Please ask something else."
- No guessing or hallucinating.

Project Data:
%s`
)

var greetingPattern = regexp.MustCompile(`^(hi|hello|hey|greetings|how are you|what's up)\b`)

// Retriever serves nearest-neighbor passage lookups once its index is
// built.
type Retriever interface {
	Ready() bool
	Search(ctx context.Context, query string, k int) ([]string, error)
}

// ChatService answers questions about the project.
type ChatService interface {
	Answer(ctx context.Context, message string) (*model.ChatResponse, error)
}

type Service struct {
	retriever Retriever
	llm       llm.Provider
	topK      int
	logger    *logger.Logger
}

func NewService(retriever Retriever, provider llm.Provider, topK int, l *logger.Logger) *Service {
	if topK <= 0 {
		topK = 5
	}
	return &Service{
		retriever: retriever,
		llm:       provider,
		topK:      topK,
		logger:    l,
	}
}

// Answer runs the per-request chat pipeline: greeting short-circuit,
// readiness check, similarity search, prompt assembly, model call.
func (s *Service) Answer(ctx context.Context, message string) (*model.ChatResponse, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return nil, apperrors.BadRequest("Please enter a valid message about the project.", nil)
	}

	if greetingPattern.MatchString(strings.ToLower(trimmed)) {
		return &model.ChatResponse{Reply: greetingReply, Context: []string{}}, nil
	}

	if !s.retriever.Ready() {
		return nil, apperrors.Unavailable("Project data is still loading. Please try again shortly.", nil)
	}

	passages, err := s.retriever.Search(ctx, trimmed, s.topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search project description: %w", err)
	}

	if len(passages) == 0 {
		return &model.ChatResponse{Reply: noInfoReply, Context: []string{}}, nil
	}

	system := fmt.Sprintf(systemPrompt, strings.Join(passages, "\n---\n"))
	reply, err := s.llm.Generate(ctx, system, trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	s.logger.Debug("chat answered", "question_len", len(trimmed), "passages", len(passages))
	return &model.ChatResponse{Reply: reply, Context: passages}, nil
}
