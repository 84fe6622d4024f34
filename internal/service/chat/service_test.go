package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/careconnect/careconnect-api/pkg/errors"
	"github.com/careconnect/careconnect-api/pkg/logger"
)

type mockRetriever struct {
	ready     bool
	passages  []string
	err       error
	lastQuery string
	lastK     int
}

func (m *mockRetriever) Ready() bool { return m.ready }

func (m *mockRetriever) Search(_ context.Context, query string, k int) ([]string, error) {
	m.lastQuery = query
	m.lastK = k
	return m.passages, m.err
}

type mockLLM struct {
	reply      string
	err        error
	lastSystem string
	lastPrompt string
}

func (m *mockLLM) Generate(_ context.Context, system, prompt string) (string, error) {
	m.lastSystem = system
	m.lastPrompt = prompt
	return m.reply, m.err
}

func newTestService(r Retriever, p *mockLLM) *Service {
	return NewService(r, p, 5, logger.NewLogger(nil))
}

func TestAnswerGreetingShortCircuits(t *testing.T) {
	retriever := &mockRetriever{ready: true}
	llm := &mockLLM{}
	svc := newTestService(retriever, llm)

	for _, msg := range []string{"hello", "Hi there", "HEY", "  greetings  ", "what's up?", "how are you"} {
		resp, err := svc.Answer(context.Background(), msg)
		require.NoError(t, err, msg)
		assert.Equal(t, greetingReply, resp.Reply, msg)
		assert.Empty(t, resp.Context, msg)
	}

	// No retrieval or model call happens for greetings.
	assert.Empty(t, retriever.lastQuery)
	assert.Empty(t, llm.lastPrompt)
}

func TestAnswerGreetingRequiresWordBoundary(t *testing.T) {
	retriever := &mockRetriever{ready: true, passages: []string{"passage"}}
	llm := &mockLLM{reply: "an answer"}
	svc := newTestService(retriever, llm)

	// "higher" starts with "hi" but is not a greeting.
	resp, err := svc.Answer(context.Background(), "higher fees?")
	require.NoError(t, err)
	assert.Equal(t, "an answer", resp.Reply)
}

func TestAnswerEmptyMessage(t *testing.T) {
	svc := newTestService(&mockRetriever{ready: true}, &mockLLM{})

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.Answer(context.Background(), msg)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr, "%q", msg)
		assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
	}
}

func TestAnswerNotReady(t *testing.T) {
	svc := newTestService(&mockRetriever{ready: false}, &mockLLM{})

	_, err := svc.Answer(context.Background(), "what endpoints exist?")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnavailable, appErr.Code)
}

func TestAnswerNoMatchingPassages(t *testing.T) {
	retriever := &mockRetriever{ready: true, passages: nil}
	llm := &mockLLM{}
	svc := newTestService(retriever, llm)

	resp, err := svc.Answer(context.Background(), "what is the meaning of life?")
	require.NoError(t, err)
	assert.Equal(t, noInfoReply, resp.Reply)
	assert.Empty(t, resp.Context)
	assert.Empty(t, llm.lastPrompt)
}

func TestAnswerBuildsStrictPrompt(t *testing.T) {
	retriever := &mockRetriever{ready: true, passages: []string{"first passage", "second passage"}}
	llm := &mockLLM{reply: "grounded answer"}
	svc := newTestService(retriever, llm)

	resp, err := svc.Answer(context.Background(), "  what endpoints exist?  ")
	require.NoError(t, err)

	assert.Equal(t, "grounded answer", resp.Reply)
	assert.Equal(t, []string{"first passage", "second passage"}, resp.Context)

	assert.Equal(t, "what endpoints exist?", retriever.lastQuery)
	assert.Equal(t, 5, retriever.lastK)
	assert.Equal(t, "what endpoints exist?", llm.lastPrompt)
	assert.Contains(t, llm.lastSystem, "first passage\n---\nsecond passage")
	assert.Contains(t, llm.lastSystem, "Use ONLY the project data below")
}

func TestAnswerSearchFailure(t *testing.T) {
	retriever := &mockRetriever{ready: true, err: errors.New("embedding backend down")}
	svc := newTestService(retriever, &mockLLM{})

	_, err := svc.Answer(context.Background(), "what endpoints exist?")
	require.Error(t, err)
	var appErr *apperrors.AppError
	assert.False(t, errors.As(err, &appErr), "search failures are internal errors")
	assert.True(t, strings.Contains(err.Error(), "embedding backend down"))
}

func TestAnswerModelFailure(t *testing.T) {
	retriever := &mockRetriever{ready: true, passages: []string{"passage"}}
	llm := &mockLLM{err: errors.New("model unavailable")}
	svc := newTestService(retriever, llm)

	_, err := svc.Answer(context.Background(), "what endpoints exist?")
	assert.Error(t, err)
}
