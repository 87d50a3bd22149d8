/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON indicates the reply contains no '{'/'}' pair to extract.
var ErrNoJSON = errors.New("no JSON object found in reply")

// ErrMalformed indicates an extracted substring that did not decode as JSON.
var ErrMalformed = errors.New("malformed JSON in reply")

// ExtractObject returns the substring between the first '{' and the last '}'
// in the reply text, inclusive. Surrounding prose, markdown fences, and
// trailing chatter are discarded. Returns ErrNoJSON when no such pair exists.
func ExtractObject(reply string) (string, error) {
	open := strings.IndexByte(reply, '{')
	end := strings.LastIndexByte(reply, '}')
	if open == -1 || end == -1 || end < open {
		return "", ErrNoJSON
	}
	return reply[open : end+1], nil
}

// Extract locates the JSON object in the reply text and unmarshals it into T.
// Decode failures are reported as ErrMalformed wrapping the underlying error.
func Extract[T any](reply string) (T, error) {
	var out T

	obj, err := ExtractObject(reply)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal([]byte(obj), &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return out, nil
}
