/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// replaceFunc supplies the substitution for a placeholder name.
type replaceFunc func(name string) (string, error)

// scanTemplate walks the template left to right, invoking replace for every
// {{name}} placeholder and splicing the replacement into the output. Text
// outside placeholders is copied through untouched.
func scanTemplate(template string, replace replaceFunc) (string, error) {
	var out strings.Builder

	for len(template) > 0 {
		open := strings.Index(template, "{{")
		if open == -1 {
			out.WriteString(template)
			break
		}
		out.WriteString(template[:open])

		end := strings.Index(template[open:], "}}")
		if end == -1 {
			return "", errors.New("unterminated placeholder: missing '}}'")
		}
		end += open + 2

		name := strings.TrimSpace(template[open+2 : end-2])
		if !validPlaceholderName(name) {
			return "", fmt.Errorf("invalid placeholder name %q", name)
		}

		replacement, err := replace(name)
		if err != nil {
			return "", err
		}
		out.WriteString(replacement)

		template = template[end:]
	}

	return out.String(), nil
}

// validPlaceholderName reports whether s is a legal placeholder name: a
// letter followed by letters, digits, or underscores.
func validPlaceholderName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
