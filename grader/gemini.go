/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// geminiClient implements Client using Google Gemini.
type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiClient creates a grading client backed by Gemini.
func NewGeminiClient(client *genai.Client, model string) Client {
	return &geminiClient{
		client:      client,
		model:       model,
		temperature: 0.1,
	}
}

// Model implements Client.
func (c *geminiClient) Model() string {
	return c.model
}

// Complete implements Client.
func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(c.temperature),
		})
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("no text content in gemini reply")
	}
	return text, nil
}
