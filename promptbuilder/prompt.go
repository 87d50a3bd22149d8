/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/json"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// valueFunc lazily produces the substitution text for a bound placeholder.
// Unbound placeholders have a nil valueFunc.
type valueFunc func() (string, error)

// Prompt is a template with named placeholders. Binding never mutates the
// receiver; each Bind* call returns a new Prompt so a base template can be
// bound differently per request.
type Prompt struct {
	template string
	bindings map[string]valueFunc
}

// New parses a template and registers every placeholder it contains.
func New(template string) (*Prompt, error) {
	bindings := make(map[string]valueFunc)

	// Walking with an identity replacement both validates the template and
	// collects the placeholder names.
	parsed, err := scanTemplate(template, func(name string) (string, error) {
		if _, ok := bindings[name]; !ok {
			bindings[name] = nil
		}
		return fmt.Sprintf("{{%s}}", name), nil
	})
	if err != nil {
		return nil, err
	}

	return &Prompt{template: parsed, bindings: bindings}, nil
}

// MustNew parses a template and panics on error. Intended for package-level
// prompt variables where the template is a compile-time constant.
func MustNew(template string) *Prompt {
	p, err := New(template)
	if err != nil {
		panic(err)
	}
	return p
}

// Placeholders returns the set of placeholder names in the template.
func (p *Prompt) Placeholders() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// bind returns a copy of p with the named placeholder bound to fn.
func (p *Prompt) bind(name string, fn valueFunc) (*Prompt, error) {
	existing, ok := p.bindings[name]
	if !ok {
		return nil, fmt.Errorf("placeholder %q not found in template", name)
	}
	if existing != nil {
		return nil, fmt.Errorf("placeholder %q already bound", name)
	}
	next := &Prompt{
		template: p.template,
		bindings: maps.Clone(p.bindings),
	}
	next.bindings[name] = fn
	return next, nil
}

// Bind binds a plain string value to a placeholder.
func (p *Prompt) Bind(name, value string) (*Prompt, error) {
	return p.bind(name, func() (string, error) { return value, nil })
}

// BindJSON binds structured data to a placeholder, rendered as indented JSON
// when the prompt is built.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, func() (string, error) {
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling %q as JSON: %w", name, err)
		}
		return string(b), nil
	})
}

// BindYAML binds structured data to a placeholder, rendered as YAML when the
// prompt is built.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.bind(name, func() (string, error) {
		b, err := yaml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("marshaling %q as YAML: %w", name, err)
		}
		return string(b), nil
	})
}

// MustBind binds a plain string value and panics on error.
func (p *Prompt) MustBind(name, value string) *Prompt {
	next, err := p.Bind(name, value)
	if err != nil {
		panic(err)
	}
	return next
}

// Build renders the final prompt text. It fails if any placeholder is still
// unbound or a bound value cannot be rendered.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for name, fn := range p.bindings {
		if fn == nil {
			return "", fmt.Errorf("unbound placeholder: %s", name)
		}
		v, err := fn()
		if err != nil {
			return "", err
		}
		values[name] = v
	}

	return scanTemplate(p.template, func(name string) (string, error) {
		return values[name], nil
	})
}
