// Package contract assembles one machine-readable API contract per
// configured version by merging reflection-derived base schemas with the
// constraints projected from the validation-rule registry.
package contract

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stoewer/go-strcase"
)

// numericFormats maps a numeric format annotation to the single declared
// type a contract node is allowed to carry.
var numericFormats = map[string]string{
	"int32":   openapi3.TypeInteger,
	"int64":   openapi3.TypeInteger,
	"float":   openapi3.TypeNumber,
	"double":  openapi3.TypeNumber,
	"decimal": openapi3.TypeNumber,
}

// FixNumericTypes collapses ambiguous numeric type sets. The reflection
// generator emits {numeric, string} when a numeric property carries a
// pattern-capable format, and a multi-type set makes the encoder omit the
// type entirely, silently degrading the field to untyped in consumers. The
// pass keeps only the numeric type, preserving a null flag for nullable
// fields, and recurses through object properties and array items. It is
// idempotent.
func FixNumericTypes(schema *openapi3.Schema) {
	if schema == nil {
		return
	}

	collapseNumericType(schema)

	for _, ref := range schema.Properties {
		if ref != nil {
			FixNumericTypes(ref.Value)
		}
	}
	if schema.Items != nil {
		FixNumericTypes(schema.Items.Value)
	}
}

func collapseNumericType(schema *openapi3.Schema) {
	numeric, ok := numericFormats[schema.Format]
	if !ok || schema.Type == nil {
		return
	}
	if !schema.Type.Includes(numeric) || !schema.Type.Includes(openapi3.TypeString) {
		return
	}

	collapsed := openapi3.Types{numeric}
	if schema.Type.Includes("null") {
		collapsed = append(collapsed, "null")
	}
	schema.Type = &collapsed
}

// FixEnumAsString projects an enum schema node to string values. The
// runtime serializes enum values as lowerCamelCase strings while the base
// generator describes them as integers; the contract must stay consistent
// with the wire encoding. A null flag is preserved for nullable enums.
func FixEnumAsString(schema *openapi3.Schema, members []string) {
	if schema == nil || len(members) == 0 {
		return
	}

	types := openapi3.Types{openapi3.TypeString}
	if schema.Type != nil && schema.Type.Includes("null") {
		types = append(types, "null")
	}
	schema.Type = &types

	values := make([]any, 0, len(members))
	for _, m := range members {
		values = append(values, strcase.LowerCamelCase(m))
	}
	schema.Enum = values
}
