/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder provides template-based prompt construction with
// explicit placeholder binding.
//
// Templates declare placeholders with double braces:
//
//	p := promptbuilder.MustNew(`Evaluate the response to {{query}}.`)
//
// Placeholders are bound one at a time, producing a new Prompt each time so
// partially-bound prompts can be shared safely:
//
//	bound, err := p.Bind("query", "What's the weather in Tokyo?")
//
// Build returns an error if any placeholder remains unbound, which catches
// prompt wiring mistakes before anything reaches a model.
package promptbuilder
