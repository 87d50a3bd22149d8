/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import "fmt"

// Rubric identifies one of the four fixed scoring dimensions.
type Rubric string

const (
	// ToolCallAccuracy measures whether the agent invoked the right tools
	// with the right arguments. Only evaluated when tool calls were captured.
	ToolCallAccuracy Rubric = "tool_call_accuracy"
	// IntentResolution measures whether the response resolves what the user
	// actually asked for.
	IntentResolution Rubric = "intent_resolution"
	// TaskAdherence measures whether the agent stayed on task.
	TaskAdherence Rubric = "task_adherence"
	// ResponseCompleteness measures whether the response covers everything
	// the query required.
	ResponseCompleteness Rubric = "response_completeness"
)

// AllRubrics lists the rubrics in evaluation order.
var AllRubrics = []Rubric{
	ToolCallAccuracy,
	IntentResolution,
	TaskAdherence,
	ResponseCompleteness,
}

// Status classifies the outcome of one rubric evaluation.
type Status string

const (
	// StatusOK means the model replied and the reply parsed.
	StatusOK Status = "ok"
	// StatusParseError means the model replied but no usable JSON verdict
	// could be extracted. Retrying the same reply will not help.
	StatusParseError Status = "parse_error"
	// StatusTransportError means the model call itself failed. These
	// failures are potentially transient.
	StatusTransportError Status = "transport_error"
)

// Score is the result of evaluating one rubric.
type Score struct {
	Rubric    Rubric  `json:"rubric"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
	Pass      bool    `json:"pass"`
	Threshold float64 `json:"threshold"`
	Status    Status  `json:"status"`
}

// String renders a one-line summary suitable for log output.
func (s Score) String() string {
	verdict := "FAIL"
	if s.Pass {
		verdict = "PASS"
	}
	return fmt.Sprintf("%s: %.1f/5.0 (threshold %.1f) %s - %s",
		s.Rubric, s.Score, s.Threshold, verdict, s.Reason)
}

// verdict is the JSON shape the grading model is asked to return.
type verdict struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}
