/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"

	"github.com/agentgrade/agentgrade/metrics"
	"github.com/agentgrade/agentgrade/promptbuilder"
	"github.com/agentgrade/agentgrade/result"
	"github.com/agentgrade/agentgrade/trace"
)

// Grader evaluates execution records against the fixed rubric set.
type Grader struct {
	client     Client
	thresholds Thresholds
	genai      *metrics.GenAI
}

// Option configures a Grader during construction.
type Option func(*Grader) error

// WithThresholds overrides the per-rubric pass thresholds.
func WithThresholds(t Thresholds) Option {
	return func(g *Grader) error {
		if err := t.Validate(); err != nil {
			return err
		}
		g.thresholds = t
		return nil
	}
}

// New creates a Grader that scores with the given model client.
func New(client Client, opts ...Option) (*Grader, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	g := &Grader{
		client:     client,
		thresholds: DefaultThresholds(),
		genai:      metrics.NewGenAI("agentgrade.grader"),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return g, nil
}

// Grade scores the record against every applicable rubric, sequentially and
// in the fixed rubric order. Tool-call accuracy is skipped when the record
// captured no tool calls. Individual rubric failures do not abort grading;
// they surface as zero scores with a non-OK status.
func (g *Grader) Grade(ctx context.Context, record *trace.ExecutionRecord) []Score {
	log := clog.FromContext(ctx)

	scores := make([]Score, 0, len(AllRubrics))
	for _, rubric := range AllRubrics {
		if rubric == ToolCallAccuracy && len(record.ToolCalls) == 0 {
			log.Info("No tool calls captured, skipping tool call accuracy")
			continue
		}

		score := g.gradeRubric(ctx, rubric, record)
		g.genai.RecordRubricScore(ctx, g.client.Model(), string(rubric), score.Score, score.Pass)
		log.With("rubric", rubric).
			With("score", score.Score).
			With("pass", score.Pass).
			With("status", score.Status).
			Info("Rubric evaluated")

		scores = append(scores, score)
	}
	return scores
}

// gradeRubric runs one rubric: build the prompt, make a single model call,
// extract the verdict, compare against the threshold. Every failure mode
// collapses to score 0 / pass false with a status naming the failure class.
func (g *Grader) gradeRubric(ctx context.Context, rubric Rubric, record *trace.ExecutionRecord) Score {
	threshold := g.thresholds.For(rubric)

	failure := func(status Status, reason string) Score {
		return Score{
			Rubric:    rubric,
			Score:     0,
			Reason:    reason,
			Pass:      false,
			Threshold: threshold,
			Status:    status,
		}
	}

	prompt, err := buildRubricPrompt(rubric, record)
	if err != nil {
		return failure(StatusTransportError, fmt.Sprintf("failed to build prompt: %v", err))
	}

	reply, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return failure(StatusTransportError, fmt.Sprintf("model call failed: %v", err))
	}

	v, err := result.Extract[verdict](reply)
	if err != nil {
		return failure(StatusParseError, fmt.Sprintf("failed to parse model reply: %v", err))
	}

	return Score{
		Rubric:    rubric,
		Score:     v.Score,
		Reason:    v.Reason,
		Pass:      v.Score >= threshold,
		Threshold: threshold,
		Status:    StatusOK,
	}
}

// buildRubricPrompt binds the record into the rubric's template. Only the
// tool-call accuracy prompt embeds the serialized tool calls.
func buildRubricPrompt(rubric Rubric, record *trace.ExecutionRecord) (string, error) {
	tmpl, ok := rubricPrompts[rubric]
	if !ok {
		return "", fmt.Errorf("no prompt for rubric %q", rubric)
	}

	bound, err := tmpl.Bind("query", record.Query)
	if err != nil {
		return "", err
	}
	bound, err = bound.Bind("response", record.Response)
	if err != nil {
		return "", err
	}
	if rubric == ToolCallAccuracy {
		bound, err = bound.BindJSON("tool_calls", record.ToolCalls)
		if err != nil {
			return "", err
		}
	}
	return bound.Build()
}

// Prompts exposes the rubric templates for inspection. The returned map
// shares the package-level immutable prompts.
func Prompts() map[Rubric]*promptbuilder.Prompt {
	out := make(map[Rubric]*promptbuilder.Prompt, len(rubricPrompts))
	for k, v := range rubricPrompts {
		out[k] = v
	}
	return out
}
