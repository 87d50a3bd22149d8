/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package tools defines the provider-independent tool model used by the
// agent runner, plus the sample tools the demo registers.
//
// A Tool pairs a Definition (name, description, JSON schema for the input)
// with a handler invoked when the model requests the tool. Input schemas are
// derived from Go parameter structs via jsonschema reflection rather than
// written by hand.
package tools
