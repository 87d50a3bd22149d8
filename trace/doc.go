/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package trace captures the execution record of a single agent run.
//
// An agent run is observed as an ordered stream of updates: text content,
// tool-call requests, and tool-call results. A Recorder consumes the stream
// and accumulates an ExecutionRecord: response text in arrival order, tool
// calls matched to their results by correlation ID, and the message
// transcript.
//
// Results that arrive with no matching request are never dropped silently;
// they are kept as orphans on the record and logged, so a broken correlation
// ID on the agent side is visible rather than a quiet data loss.
package trace
