// Package summarize owns the asynchronous step that turns report trees into
// markdown text: an LLM-backed generator and a polling worker that drains
// pending report requests.
package summarize

import (
	"context"
	"errors"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
	"github.com/CalebGreaves/tta-summary-dev/internal/llm"
	"github.com/CalebGreaves/tta-summary-dev/internal/render"
)

// Service generates report text from a decoded tree. With no LLM client, or
// an unreachable one, it degrades to the plain rendered skeleton so report
// generation never blocks on the model.
type Service struct {
	client llm.LLMClient
}

// NewService creates a summarization Service. client may be nil.
func NewService(client llm.LLMClient) *Service {
	return &Service{client: client}
}

// Summarize renders the tree to its markdown skeleton and asks the LLM to
// turn it into narrative prose.
func (s *Service) Summarize(ctx context.Context, tree *domain.HierarchyNode) (string, error) {
	skeleton := render.Markdown(tree)
	if s.client == nil {
		return skeleton, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummarize,
		SystemPrompt: summarizeSystemPrompt,
		UserPrompt:   skeleton,
	})
	if err != nil {
		if errors.Is(err, llm.ErrOllamaUnavailable) {
			return skeleton, nil
		}
		return "", err
	}
	return resp.Text, nil
}
