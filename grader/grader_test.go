/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/agentgrade/agentgrade/trace"
)

// fakeClient replies with canned text per prompt, recording what it saw.
type fakeClient struct {
	reply   func(prompt string) (string, error)
	prompts []string
}

func (f *fakeClient) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply(prompt)
}

func (f *fakeClient) Model() string { return "fake-model" }

func constReply(reply string) *fakeClient {
	return &fakeClient{reply: func(string) (string, error) { return reply, nil }}
}

func recordWithToolCalls() *trace.ExecutionRecord {
	return &trace.ExecutionRecord{
		Query:    "What's the weather in Tokyo?",
		Response: "Tokyo is sunny with a high of 18C.",
		ToolCalls: []trace.ToolCallRecord{{
			ID:     "1",
			Name:   "get_weather",
			Args:   map[string]any{"location": "Tokyo"},
			Result: "18C",
		}},
	}
}

func TestGradeAllRubricsWithToolCalls(t *testing.T) {
	client := constReply(`{"score": 4, "reason": "solid"}`)
	g, err := New(client)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	scores := g.Grade(context.Background(), recordWithToolCalls())

	if len(scores) != 4 {
		t.Fatalf("Grade() returned %d scores, want 4", len(scores))
	}
	for _, s := range scores {
		if s.Score != 4 || !s.Pass || s.Status != StatusOK {
			t.Errorf("score %+v, want score=4 pass=true status=ok", s)
		}
		if s.Reason != "solid" {
			t.Errorf("reason = %q, want %q", s.Reason, "solid")
		}
	}
	if scores[0].Rubric != ToolCallAccuracy {
		t.Errorf("first rubric = %s, want %s", scores[0].Rubric, ToolCallAccuracy)
	}
}

func TestGradeSkipsToolCallAccuracyWithoutToolCalls(t *testing.T) {
	client := constReply(`{"score": 5, "reason": "ok"}`)
	g, err := New(client)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	scores := g.Grade(context.Background(), &trace.ExecutionRecord{
		Query:    "hi",
		Response: "hello",
	})

	if len(scores) != 3 {
		t.Fatalf("Grade() returned %d scores, want 3", len(scores))
	}
	for _, s := range scores {
		if s.Rubric == ToolCallAccuracy {
			t.Error("tool call accuracy evaluated despite empty tool-call list")
		}
	}
}

func TestGradeThresholdBoundary(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		pass  bool
	}{{
		name:  "exactly at threshold passes",
		reply: `{"score": 3.0, "reason": "borderline"}`,
		pass:  true,
	}, {
		name:  "just below threshold fails",
		reply: `{"score": 2.999, "reason": "borderline"}`,
		pass:  false,
	}, {
		name:  "above threshold passes",
		reply: `{"score": 5, "reason": "great"}`,
		pass:  true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(constReply(tt.reply))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			scores := g.Grade(context.Background(), &trace.ExecutionRecord{Query: "q", Response: "r"})
			for _, s := range scores {
				if s.Pass != tt.pass {
					t.Errorf("rubric %s pass = %v, want %v", s.Rubric, s.Pass, tt.pass)
				}
			}
		})
	}
}

func TestGradeReplyWithSurroundingProse(t *testing.T) {
	g, err := New(constReply(`Sure! {"score": 4, "reason": "ok"} thanks`))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	scores := g.Grade(context.Background(), &trace.ExecutionRecord{Query: "q", Response: "r"})
	for _, s := range scores {
		if s.Score != 4 || s.Reason != "ok" || s.Status != StatusOK {
			t.Errorf("score %+v, want score=4 reason=ok status=ok", s)
		}
	}
}

func TestGradeFailureModes(t *testing.T) {
	tests := []struct {
		name       string
		client     *fakeClient
		wantStatus Status
	}{{
		name:       "no JSON in reply",
		client:     constReply("I refuse to answer in JSON."),
		wantStatus: StatusParseError,
	}, {
		name:       "braces but undecodable",
		client:     constReply(`{"score": not a number}`),
		wantStatus: StatusParseError,
	}, {
		name: "transport error",
		client: &fakeClient{reply: func(string) (string, error) {
			return "", errors.New("connection reset")
		}},
		wantStatus: StatusTransportError,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.client)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			scores := g.Grade(context.Background(), &trace.ExecutionRecord{Query: "q", Response: "r"})
			if len(scores) == 0 {
				t.Fatal("Grade() returned no scores")
			}
			for _, s := range scores {
				if s.Score != 0 || s.Pass {
					t.Errorf("failure score %+v, want score=0 pass=false", s)
				}
				if s.Status != tt.wantStatus {
					t.Errorf("status = %s, want %s", s.Status, tt.wantStatus)
				}
				if s.Reason == "" {
					t.Error("failure reason is empty")
				}
			}
		})
	}
}

func TestGradePromptContents(t *testing.T) {
	client := constReply(`{"score": 3, "reason": "ok"}`)
	g, err := New(client)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	g.Grade(context.Background(), recordWithToolCalls())

	if len(client.prompts) != 4 {
		t.Fatalf("client saw %d prompts, want 4", len(client.prompts))
	}

	// Every prompt embeds the query and response.
	for i, p := range client.prompts {
		if !strings.Contains(p, "What's the weather in Tokyo?") {
			t.Errorf("prompt %d missing query", i)
		}
		if !strings.Contains(p, "Tokyo is sunny with a high of 18C.") {
			t.Errorf("prompt %d missing response", i)
		}
	}

	// Only the first (tool call accuracy) embeds the tool calls.
	if !strings.Contains(client.prompts[0], "get_weather") {
		t.Error("tool call accuracy prompt missing serialized tool calls")
	}
	for i, p := range client.prompts[1:] {
		if strings.Contains(p, "get_weather") {
			t.Errorf("prompt %d unexpectedly contains tool calls", i+1)
		}
	}
}

func TestGradeCustomThresholds(t *testing.T) {
	g, err := New(constReply(`{"score": 3.5, "reason": "ok"}`), WithThresholds(Thresholds{
		TaskAdherence: 4.0,
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	scores := g.Grade(context.Background(), &trace.ExecutionRecord{Query: "q", Response: "r"})
	for _, s := range scores {
		want := s.Rubric != TaskAdherence // 3.5 >= 3.0 default, < 4.0 override
		if s.Pass != want {
			t.Errorf("rubric %s pass = %v, want %v (threshold %.1f)", s.Rubric, s.Pass, want, s.Threshold)
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) should fail")
	}
	if _, err := New(constReply("x"), WithThresholds(Thresholds{"bogus": 3})); err == nil {
		t.Error("New() should reject unknown rubric in thresholds")
	}
	if _, err := New(constReply("x"), WithThresholds(Thresholds{TaskAdherence: 9})); err == nil {
		t.Error("New() should reject out-of-scale threshold")
	}
}
