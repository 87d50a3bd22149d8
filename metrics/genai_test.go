/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"testing"
)

func TestNewGenAI(t *testing.T) {
	m := NewGenAI("agentgrade.test")
	if m == nil {
		t.Fatal("NewGenAI() returned nil")
	}
	if m.promptTokens == nil || m.completionTokens == nil || m.toolCalls == nil || m.rubricScores == nil {
		t.Error("NewGenAI() left an instrument nil")
	}
}

func TestRecordingDoesNotPanic(t *testing.T) {
	// The global otel meter provider defaults to noop in tests; recording
	// must be safe regardless of configuration.
	ctx := context.Background()
	m := NewGenAI("agentgrade.test")

	m.RecordTokens(ctx, "claude-sonnet-4", 120, 45)
	m.RecordToolCall(ctx, "claude-sonnet-4", "get_weather")
	m.RecordRubricScore(ctx, "claude-sonnet-4", "task_adherence", 4.0, true)
}
