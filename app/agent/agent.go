package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ragchat/index"
	"ragchat/model"
	"ragchat/types"
)

const (
	// retrieved chunks per grounded question
	topK = 3

	notFoundAnswer = "I couldn't find relevant information in the indexed data to answer your question."

	groundedPrompt = `Based on the following context, answer the question. If the answer is not in the context, say so.

Context:
%s

Question: %s

Answer:`
)

// Agent is the answer pipeline. Small talk goes straight to the model;
// everything else is answered strictly from retrieved chunks, with
// source attribution.
type Agent struct {
	index *index.Index
	llm   model.Generator
}

func New(ix *index.Index, llm model.Generator) *Agent {
	return &Agent{
		index: ix,
		llm:   llm,
	}
}

func (a *Agent) Ask(ctx context.Context, question string) (*types.Answer, error) {
	if prompt, ok := matchCasual(question); ok {
		answer, err := a.llm.Generate(ctx, prompt)
		if err != nil {
			return nil, err
		}
		return &types.Answer{Answer: strings.TrimSpace(answer), Sources: 0}, nil
	}

	if !a.index.Ready() {
		return nil, fmt.Errorf("%w. Please upload files, add text, or index a website first", types.ErrNoData)
	}

	hits, err := a.index.Search(ctx, question, topK)
	if err != nil {
		return nil, err
	}

	// zero retrieval results is a designed success, not an error
	if len(hits) == 0 {
		return &types.Answer{Answer: notFoundAnswer, Sources: 0}, nil
	}

	texts := make([]string, len(hits))
	for i, hit := range hits {
		texts[i] = hit.Text
	}
	contextBlock := strings.Join(texts, "\n\n")

	log.Printf("[ASK] answering from %d chunks, context %d chars", len(hits), len(contextBlock))

	answer, err := a.llm.Generate(ctx, fmt.Sprintf(groundedPrompt, contextBlock, question))
	if err != nil {
		return nil, err
	}

	return &types.Answer{
		Answer:      strings.TrimSpace(answer),
		Sources:     len(hits),
		SourceTypes: sourceTypes(hits),
	}, nil
}

// sourceTypes collects the deduplicated type metadata of the hits in
// first-seen order.
func sourceTypes(hits []types.Hit) []string {
	seen := make(map[string]struct{}, len(hits))
	var out []string
	for _, hit := range hits {
		t := hit.Metadata["type"]
		if t == "" {
			t = "unknown"
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
