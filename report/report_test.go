/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/agentgrade/agentgrade/grader"
	"github.com/agentgrade/agentgrade/trace"
)

func sampleScores() []grader.Score {
	return []grader.Score{{
		Rubric:    grader.ToolCallAccuracy,
		Score:     4,
		Reason:    "correct tool usage",
		Pass:      true,
		Threshold: 3,
		Status:    grader.StatusOK,
	}, {
		Rubric:    grader.ResponseCompleteness,
		Score:     2,
		Reason:    "missing details",
		Pass:      false,
		Threshold: 3,
		Status:    grader.StatusOK,
	}}
}

func TestPassed(t *testing.T) {
	if Passed(sampleScores()) {
		t.Error("Passed() = true with a failing score")
	}
	if !Passed(sampleScores()[:1]) {
		t.Error("Passed() = false with only passing scores")
	}
	if !Passed(nil) {
		t.Error("Passed(nil) = false, want true")
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleScores()); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"tool_call_accuracy", "response_completeness",
		"PASS", "FAIL",
		"Overall: FAIL",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteTable() output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTableAllPassing(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleScores()[:1]); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Overall: PASS") {
		t.Errorf("WriteTable() output missing overall pass:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	record := &trace.ExecutionRecord{
		Query:    "What's the weather in Tokyo?",
		Response: "Sunny, 18C.",
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, record, sampleScores()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded struct {
		Record struct {
			Query string `json:"query"`
		} `json:"execution_record"`
		Scores []grader.Score `json:"rubric_scores"`
		Passed bool           `json:"passed"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("WriteJSON() produced invalid JSON: %v", err)
	}

	if decoded.Record.Query != record.Query {
		t.Errorf("query = %q, want %q", decoded.Record.Query, record.Query)
	}
	if len(decoded.Scores) != 2 {
		t.Errorf("scores = %d, want 2", len(decoded.Scores))
	}
	if decoded.Passed {
		t.Error("passed = true, want false")
	}
}
