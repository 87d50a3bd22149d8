/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tools

import "github.com/invopop/jsonschema"

// reflector is configured for inline tool input schemas: no $ref indirection
// and required-ness driven by jsonschema struct tags.
var reflector = jsonschema.Reflector{
	RequiredFromJSONSchemaTags: true,
	ExpandedStruct:             true,
	AllowAdditionalProperties:  true,
	DoNotReference:             true,
}

// Schema derives the JSON schema for a tool parameter struct type.
func Schema[T any]() *jsonschema.Schema {
	var zero T
	return reflector.Reflect(&zero)
}
