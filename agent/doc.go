/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package agent runs a tool-using conversation against Claude and surfaces
// the run as a stream of trace updates.
//
// The Runner owns the conversation loop: it streams each model turn,
// dispatches tool calls to registered handlers, feeds tool results back into
// the conversation, and emits a trace.Update for every piece of text, tool
// request, and tool result in delivery order. Pair it with trace.NewRecorder
// (or use Capture) to turn a run into an ExecutionRecord.
package agent
