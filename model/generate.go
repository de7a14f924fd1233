package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pkoukk/tiktoken-go"

	"ragchat/types"
)

// Generator is the text-generation capability consumed by the answer
// pipeline. One synchronous call, no retry, no streaming to the caller.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OllamaGenerator generates answers through the Ollama generate API.
type OllamaGenerator struct {
	apiURL string
	model  string
	system string
}

type GenerateRequest struct {
	Model  string `json:"model"`
	System string `json:"system"`
	Prompt string `json:"prompt"`
}

type GenerateResponse struct {
	Response string `json:"response"`
}

func NewOllamaGenerator(apiURL, model string) *OllamaGenerator {
	return &OllamaGenerator{
		apiURL: apiURL,
		model:  model,
		system: `You are a helpful assistant. Answer clearly and to the point, without adding introductions like 'Of course!' or 'Here's the answer:'.`,
	}
}

func (g *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	defer func() {
		log.Printf("[LLM] answer took %v", time.Since(start))
	}()

	reqBody, err := json.Marshal(GenerateRequest{
		Model:  g.model,
		System: g.system,
		Prompt: prompt,
	})
	if err != nil {
		return "", &types.GenerationError{Err: err}
	}

	if count, err := CountTokens(reqBody); err == nil {
		log.Printf("[LLM] prompt size: %d tokens, %d bytes", count, len(reqBody))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", &types.GenerationError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", &types.GenerationError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &types.GenerationError{Err: fmt.Errorf("ollama API error: status %d, body: %s", resp.StatusCode, string(body))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &types.GenerationError{Err: err}
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err == nil && genResp.Response != "" {
		return genResp.Response, nil
	}

	// streamed responses arrive as NDJSON, collect the fragments
	var output strings.Builder
	decoder := json.NewDecoder(bytes.NewReader(body))
	for decoder.More() {
		var chunk GenerateResponse
		if err := decoder.Decode(&chunk); err != nil {
			return "", &types.GenerationError{Err: fmt.Errorf("decode response: %w", err)}
		}
		output.WriteString(chunk.Response)
	}
	return output.String(), nil
}

// CountTokens sizes a payload with a GPT-compatible BPE. Close enough
// for logging against llama-family models.
func CountTokens(data []byte) (int, error) {
	enc, err := tiktoken.EncodingForModel("gpt-3.5-turbo")
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(string(data), nil, nil)), nil
}
