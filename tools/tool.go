/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tools

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Definition describes a tool's contract: its name, what it does, and the
// JSON schema of its input.
type Definition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// Tool is a named capability the agent can invoke. The handler receives the
// argument mapping the model supplied and returns the result text sent back
// into the conversation.
type Tool struct {
	Def     Definition
	Handler func(ctx context.Context, args map[string]any) (string, error)
}

// Param extracts a required argument of type T from the call args.
func Param[T any](args map[string]any, name string) (T, error) {
	var zero T
	raw, ok := args[name]
	if !ok {
		return zero, fmt.Errorf("missing %q parameter", name)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("parameter %q has type %T, want %T", name, raw, zero)
	}
	return v, nil
}

// OptionalParam extracts an optional argument of type T, returning the
// default when absent.
func OptionalParam[T any](args map[string]any, name string, defaultValue T) (T, error) {
	raw, ok := args[name]
	if !ok {
		return defaultValue, nil
	}
	v, ok := raw.(T)
	if !ok {
		return defaultValue, fmt.Errorf("parameter %q has type %T, want %T", name, raw, defaultValue)
	}
	return v, nil
}
