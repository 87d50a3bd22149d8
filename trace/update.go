/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package trace

// Update is one event in an agent's streamed run. Exactly three kinds exist:
// TextContent, ToolCallRequest, and ToolCallResult.
type Update interface {
	isUpdate()
}

// TextContent carries a chunk of assistant text in arrival order.
type TextContent struct {
	Text string
}

// ToolCallRequest announces a tool invocation the model asked for. The ID
// correlates the eventual ToolCallResult back to this request.
type ToolCallRequest struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolCallResult carries the outcome of an earlier ToolCallRequest with the
// same ID.
type ToolCallResult struct {
	ID     string
	Result string
}

func (TextContent) isUpdate()     {}
func (ToolCallRequest) isUpdate() {}
func (ToolCallResult) isUpdate()  {}
