/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
)

// openaiClient implements Client using the OpenAI chat completions API.
type openaiClient struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewOpenAIClient creates a grading client backed by an OpenAI model.
func NewOpenAIClient(client openai.Client, model string) Client {
	return &openaiClient{
		client:      client,
		model:       model,
		temperature: 0.1,
	}
}

// Model implements Client.
func (c *openaiClient) Model() string {
	return c.model
}

// Complete implements Client.
func (c *openaiClient) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(c.temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no choices in openai reply")
	}
	return completion.Choices[0].Message.Content, nil
}
