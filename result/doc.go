/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package result extracts structured JSON results from free-form model
// replies. Models frequently wrap the requested JSON object in prose or
// markdown, so extraction takes everything between the first '{' and the
// last '}' in the reply and decodes that substring.
//
// Failures are typed: ErrNoJSON when no brace pair exists, and ErrMalformed
// (wrapping the decode error) when the substring does not deserialize. This
// lets callers distinguish "the model ignored the output format" from
// transport-level failures they may want to handle differently.
package result
