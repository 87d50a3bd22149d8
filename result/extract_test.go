/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"errors"
	"testing"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  error
	}{{
		name:     "bare object",
		input:    `{"score": 4}`,
		expected: `{"score": 4}`,
	}, {
		name:     "object with surrounding prose",
		input:    `Sure! {"score": 4, "reason": "ok"} thanks`,
		expected: `{"score": 4, "reason": "ok"}`,
	}, {
		name:     "object inside markdown fence",
		input:    "```json\n{\"score\": 2}\n```",
		expected: `{"score": 2}`,
	}, {
		name:     "nested braces span first to last",
		input:    `prefix {"outer": {"inner": 1}} suffix`,
		expected: `{"outer": {"inner": 1}}`,
	}, {
		name: "multiline object",
		input: `Here is my evaluation:
{
  "score": 5,
  "reason": "complete"
}`,
		expected: "{\n  \"score\": 5,\n  \"reason\": \"complete\"\n}",
	}, {
		name:    "no braces at all",
		input:   "I cannot evaluate this.",
		wantErr: ErrNoJSON,
	}, {
		name:    "open brace only",
		input:   "starts { but never closes",
		wantErr: ErrNoJSON,
	}, {
		name:    "close before open",
		input:   "} backwards {",
		wantErr: ErrNoJSON,
	}, {
		name:    "empty input",
		input:   "",
		wantErr: ErrNoJSON,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObject(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractObject() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractObject() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ExtractObject() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	type verdict struct {
		Score  float64 `json:"score"`
		Reason string  `json:"reason"`
	}

	t.Run("valid object with prose", func(t *testing.T) {
		got, err := Extract[verdict](`Sure! {"score": 4, "reason": "ok"} thanks`)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		if got.Score != 4 || got.Reason != "ok" {
			t.Errorf("Extract() = %+v, want score=4 reason=ok", got)
		}
	})

	t.Run("no braces is ErrNoJSON", func(t *testing.T) {
		_, err := Extract[verdict]("nothing here")
		if !errors.Is(err, ErrNoJSON) {
			t.Errorf("Extract() error = %v, want ErrNoJSON", err)
		}
	})

	t.Run("undecodable contents is ErrMalformed", func(t *testing.T) {
		_, err := Extract[verdict](`{"score": not valid}`)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Extract() error = %v, want ErrMalformed", err)
		}
	})

	t.Run("wrong shape but valid json decodes to zero value", func(t *testing.T) {
		got, err := Extract[verdict](`{"unrelated": true}`)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		if got.Score != 0 || got.Reason != "" {
			t.Errorf("Extract() = %+v, want zero verdict", got)
		}
	})
}
