/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package trace

import (
	"context"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"
)

// Recorder accumulates an ExecutionRecord from a stream of updates. It
// assumes a single producer delivering updates in order; nothing else
// mutates the record while the stream is live.
type Recorder struct {
	record   *ExecutionRecord
	response strings.Builder
	// pending indexes in-flight tool calls by correlation ID so results can
	// be matched back to the request that produced them.
	pending map[string]int
}

// NewRecorder starts capturing a run for the given query.
func NewRecorder(query string) *Recorder {
	rec := &Recorder{
		record: &ExecutionRecord{
			Query:     query,
			StartTime: time.Now(),
			Messages: []MessageRecord{{
				Role:    RoleUser,
				Content: query,
			}},
		},
		pending: make(map[string]int),
	}
	return rec
}

// Observe applies one update to the record.
func (r *Recorder) Observe(ctx context.Context, update Update) {
	switch u := update.(type) {
	case TextContent:
		r.response.WriteString(u.Text)

	case ToolCallRequest:
		log := clog.FromContext(ctx)
		if _, exists := r.pending[u.ID]; exists {
			log.With("id", u.ID).With("tool", u.Name).
				Warn("Duplicate tool call ID, overwriting pending entry")
		}
		r.record.ToolCalls = append(r.record.ToolCalls, ToolCallRecord{
			ID:   u.ID,
			Name: u.Name,
			Args: u.Args,
		})
		r.pending[u.ID] = len(r.record.ToolCalls) - 1
		r.record.Messages = append(r.record.Messages, MessageRecord{
			Role: RoleAssistant,
			ToolCalls: []ToolCallRecord{{
				ID:   u.ID,
				Name: u.Name,
				Args: u.Args,
			}},
		})

	case ToolCallResult:
		log := clog.FromContext(ctx)
		idx, ok := r.pending[u.ID]
		if !ok {
			// A result with no originating request. Keep it visible instead
			// of losing it.
			log.With("id", u.ID).Warn("Tool result has no matching request, recording as orphan")
			r.record.Orphans = append(r.record.Orphans, OrphanResult{
				ID:     u.ID,
				Result: u.Result,
			})
			return
		}
		delete(r.pending, u.ID)
		r.record.ToolCalls[idx].Result = u.Result
		r.record.Messages = append(r.record.Messages, MessageRecord{
			Role:    RoleTool,
			Content: u.Result,
			ToolCalls: []ToolCallRecord{{
				ID:     u.ID,
				Name:   r.record.ToolCalls[idx].Name,
				Result: u.Result,
			}},
		})
	}
}

// Record finalizes and returns the execution record. The accumulated text is
// flushed into the response and transcript, and the end time is stamped.
// Calling Observe after Record is not supported.
func (r *Recorder) Record() *ExecutionRecord {
	r.record.Response = r.response.String()
	if r.record.Response != "" {
		r.record.Messages = append(r.record.Messages, MessageRecord{
			Role:    RoleAssistant,
			Content: r.record.Response,
		})
	}
	r.record.EndTime = time.Now()
	return r.record
}
