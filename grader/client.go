/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import "context"

// Client is the single-turn boundary to the grading model: one user message
// in, free-form reply text out. The reply is expected to contain one JSON
// object with "score" and "reason" keys, but the Client makes no attempt to
// enforce that; extraction happens in the Grader.
type Client interface {
	// Complete sends the prompt as a single user-role message and returns
	// the raw reply text.
	Complete(ctx context.Context, prompt string) (string, error)
	// Model returns the model name, used as a metrics dimension.
	Model() string
}
