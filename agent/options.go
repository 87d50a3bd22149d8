/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"errors"
	"fmt"

	"github.com/agentgrade/agentgrade/tools"
)

// Option configures a Runner during construction.
type Option func(*Runner) error

// WithModel sets the Claude model name.
func WithModel(model string) Option {
	return func(r *Runner) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		r.model = model
		return nil
	}
}

// WithMaxTokens sets the maximum number of output tokens per turn.
func WithMaxTokens(maxTokens int64) Option {
	return func(r *Runner) error {
		if maxTokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", maxTokens)
		}
		r.maxTokens = maxTokens
		return nil
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(r *Runner) error {
		if temperature < 0 || temperature > 1 {
			return fmt.Errorf("temperature must be in [0, 1], got %f", temperature)
		}
		r.temperature = temperature
		return nil
	}
}

// WithSystemPrompt sets the system instructions for the conversation.
func WithSystemPrompt(system string) Option {
	return func(r *Runner) error {
		r.system = system
		return nil
	}
}

// WithTools registers the tools the agent may invoke.
func WithTools(ts ...tools.Tool) Option {
	return func(r *Runner) error {
		for _, t := range ts {
			if t.Def.Name == "" {
				return errors.New("tool definition has no name")
			}
			if _, exists := r.tools[t.Def.Name]; exists {
				return fmt.Errorf("duplicate tool %q", t.Def.Name)
			}
			r.tools[t.Def.Name] = t
		}
		return nil
	}
}
