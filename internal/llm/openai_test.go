package llm

import (
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestOpenAIFragmentFromChunk(t *testing.T) {
	resp := openai.ChatCompletionStreamResponse{
		Choices: []openai.ChatCompletionStreamChoice{
			{Delta: openai.ChatCompletionStreamChoiceDelta{Content: "hello"}},
		},
	}

	frag, err := openaiFragment(resp)
	if err != nil {
		t.Fatalf("openaiFragment: %v", err)
	}
	if frag.Text != "hello" {
		t.Errorf("Text = %q, want %q", frag.Text, "hello")
	}
}

func TestOpenAIFragmentRejectsEmptyChunk(t *testing.T) {
	_, err := openaiFragment(openai.ChatCompletionStreamResponse{})
	if err == nil {
		t.Fatal("expected an error for a chunk with no choices")
	}

	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("error = %T, want *ErrInvalidResponse", err)
	}
	if isRetryable(err) {
		t.Error("an invalid response must not be retried")
	}
}
