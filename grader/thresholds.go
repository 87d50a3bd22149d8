/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultThreshold is the minimum score at which a rubric passes when no
// per-rubric override is configured.
const DefaultThreshold = 3.0

// Thresholds maps each rubric to the minimum passing score. The four
// rubrics measure unrelated qualities, so they are tunable independently.
type Thresholds map[Rubric]float64

// DefaultThresholds returns the default threshold for every rubric.
func DefaultThresholds() Thresholds {
	t := make(Thresholds, len(AllRubrics))
	for _, r := range AllRubrics {
		t[r] = DefaultThreshold
	}
	return t
}

// For returns the threshold for the given rubric, falling back to the
// default for rubrics with no explicit entry.
func (t Thresholds) For(rubric Rubric) float64 {
	if v, ok := t[rubric]; ok {
		return v
	}
	return DefaultThreshold
}

// Validate checks that every configured threshold names a known rubric and
// sits inside the 1-5 scoring scale.
func (t Thresholds) Validate() error {
	known := make(map[Rubric]bool, len(AllRubrics))
	for _, r := range AllRubrics {
		known[r] = true
	}
	for rubric, v := range t {
		if !known[rubric] {
			return fmt.Errorf("unknown rubric %q", rubric)
		}
		if v < 1 || v > 5 {
			return fmt.Errorf("threshold %.2f for %s is outside [1, 5]", v, rubric)
		}
	}
	return nil
}

// LoadThresholds reads per-rubric thresholds from a YAML file of the form:
//
//	tool_call_accuracy: 3.5
//	response_completeness: 4
//
// Rubrics absent from the file keep the default threshold.
func LoadThresholds(path string) (Thresholds, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading thresholds file: %w", err)
	}

	var raw map[Rubric]float64
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parsing thresholds file: %w", err)
	}

	t := DefaultThresholds()
	for rubric, v := range raw {
		t[rubric] = v
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
