/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package trace

import (
	"fmt"
	"strings"
	"time"
)

// Role tags a message in the captured transcript.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCallRecord is one tool invocation: the request the model made and the
// result that came back for the same correlation ID.
type ToolCallRecord struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Args   map[string]any `json:"args,omitempty"`
	Result string         `json:"result,omitempty"`
}

// MessageRecord is one entry in the conversation transcript.
type MessageRecord struct {
	Role      Role             `json:"role"`
	Content   string           `json:"content,omitempty"`
	ToolCalls []ToolCallRecord `json:"tool_calls,omitempty"`
}

// OrphanResult is a tool-call result that arrived with a correlation ID no
// request ever used.
type OrphanResult struct {
	ID     string `json:"id"`
	Result string `json:"result"`
}

// ExecutionRecord is the captured trace of one agent run. It is built fresh
// per invocation and only ever appended to while the update stream is live.
type ExecutionRecord struct {
	Query     string           `json:"query"`
	Response  string           `json:"response"`
	ToolCalls []ToolCallRecord `json:"tool_calls,omitempty"`
	Messages  []MessageRecord  `json:"messages,omitempty"`
	Orphans   []OrphanResult   `json:"orphan_results,omitempty"`
	StartTime time.Time        `json:"start_time"`
	EndTime   time.Time        `json:"end_time,omitempty"`
}

// Duration returns how long the run took, or time since start if the record
// has not been finalized yet.
func (r *ExecutionRecord) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// String returns a human-readable rendering of the record for log output.
func (r *ExecutionRecord) String() string {
	var sb strings.Builder

	sb.WriteString("=== Execution Record ===\n")
	sb.WriteString(fmt.Sprintf("Query: %q\n", r.Query))
	sb.WriteString(fmt.Sprintf("Duration: %v\n", r.Duration()))
	sb.WriteString(fmt.Sprintf("Response: %s\n", r.Response))

	if len(r.ToolCalls) > 0 {
		sb.WriteString(fmt.Sprintf("\nTool Calls (%d):\n", len(r.ToolCalls)))
		for i, tc := range r.ToolCalls {
			sb.WriteString(fmt.Sprintf("  [%d] %s (ID: %s)\n", i+1, tc.Name, tc.ID))
			for k, v := range tc.Args {
				sb.WriteString(fmt.Sprintf("      %s: %v\n", k, v))
			}
			if tc.Result != "" {
				resultStr := tc.Result
				if len(resultStr) > 200 {
					resultStr = resultStr[:197] + "..."
				}
				sb.WriteString(fmt.Sprintf("      Result: %s\n", resultStr))
			}
		}
	} else {
		sb.WriteString("\nNo tool calls\n")
	}

	if len(r.Orphans) > 0 {
		sb.WriteString(fmt.Sprintf("\nOrphan Results (%d):\n", len(r.Orphans)))
		for i, o := range r.Orphans {
			sb.WriteString(fmt.Sprintf("  [%d] ID %s: %s\n", i+1, o.ID, o.Result))
		}
	}

	return sb.String()
}
