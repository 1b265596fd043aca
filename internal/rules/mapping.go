package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/samber/lo"
)

// wellKnownPatterns maps regex fragments that commonly appear in validation
// rules to a human-readable description. A recognized pattern gets the
// description appended instead of a raw pattern field, which reads much
// better in rendered documentation. Everything else is carried verbatim.
var wellKnownPatterns = map[string]string{
	`^\d+$`:                  "Must contain only digits",
	`^[0-9]+$`:               "Must contain only digits",
	`^[a-zA-Z]+$`:            "Must contain only letters",
	`^[a-zA-Z ]+$`:           "Must contain only letters and spaces",
	`^[a-zA-Z0-9]+$`:         "Must contain only letters and digits",
	`^[a-z0-9-]+$`:           "Must contain only lowercase letters, digits, and hyphens",
	`[A-Z]`:                  "Must contain at least one uppercase letter",
	`[a-z]`:                  "Must contain at least one lowercase letter",
	`[0-9]`:                  "Must contain at least one digit",
	`\d`:                     "Must contain at least one digit",
	`^\S+$`:                  "Must not contain whitespace",
	`[^a-zA-Z0-9]`:           "Must contain at least one special character",
	`^[\w.+-]+@[\w-]+\.\w+$`: "Must be a valid email address",
}

// ApplyToObject applies every rule for every member of the descriptor to
// the matching property schema of obj, mutating it in place. Required-ness
// is recorded in the object's required set using the descriptor's member
// name, matching the rule registry's casing convention.
func ApplyToObject(desc Descriptor, obj *openapi3.Schema) {
	for member, memberRules := range desc {
		target := matchProperty(obj, member)
		for _, rule := range memberRules {
			if rule.Kind == KindNotEmpty {
				if !lo.Contains(obj.Required, member) {
					obj.Required = append(obj.Required, member)
				}
				continue
			}
			if target != nil {
				applyRule(rule, target)
			}
		}
	}
}

// ApplyToParameter applies the rules bound to a single externally-bound
// parameter. The constraint table is shared with the object case; only the
// required-flag sink differs.
func ApplyToParameter(paramRules []Rule, param *openapi3.Parameter) {
	for _, rule := range paramRules {
		if rule.Kind == KindNotEmpty {
			param.Required = true
			continue
		}
		if param.Schema != nil && param.Schema.Value != nil {
			applyRule(rule, param.Schema.Value)
		}
	}
}

// applyRule mutates schema per the rule → constraint table. Later rules for
// the same facet overwrite earlier ones; descriptions only accumulate.
func applyRule(rule Rule, schema *openapi3.Schema) {
	switch rule.Kind {
	case KindMaxLength:
		schema.MaxLength = lo.ToPtr(rule.MaxLen)
	case KindMinLength:
		schema.MinLength = rule.MinLen
	case KindLengthRange:
		schema.MinLength = rule.MinLen
		schema.MaxLength = lo.ToPtr(rule.MaxLen)
	case KindComparison:
		switch rule.Op {
		case OpGreaterThan:
			schema.Min = lo.ToPtr(rule.Bound)
			schema.ExclusiveMin = true
		case OpGreaterOrEqual:
			schema.Min = lo.ToPtr(rule.Bound)
		case OpLessThan:
			schema.Max = lo.ToPtr(rule.Bound)
			schema.ExclusiveMax = true
		case OpLessOrEqual:
			schema.Max = lo.ToPtr(rule.Bound)
		}
	case KindBetween:
		schema.Min = lo.ToPtr(rule.Low)
		schema.Max = lo.ToPtr(rule.High)
	case KindEmail:
		schema.Format = "email"
	case KindCreditCard:
		appendDescription(schema, "Must be a valid credit card number")
	case KindRegex:
		if desc, ok := wellKnownPatterns[rule.Pattern]; ok {
			appendDescription(schema, desc)
		} else {
			schema.Pattern = rule.Pattern
		}
	case KindEnumOf:
		appendDescription(schema, "Allowed values: "+strings.Join(rule.Members, ", "))
	case KindEquality:
		switch rule.Op {
		case OpEqual:
			appendDescription(schema, fmt.Sprintf("Must equal: %v", rule.Target))
		case OpNotEqual:
			appendDescription(schema, fmt.Sprintf("Must not equal: %v", rule.Target))
		}
	case KindScalePrecision:
		appendDescription(schema, fmt.Sprintf("Max %d decimal places, %d digits total", rule.Scale, rule.Precision))
	case KindMaxSize:
		appendDescription(schema, "Maximum file size: "+humanize.Bytes(rule.MaxSizeBytes))
	case KindContentTypes:
		appendDescription(schema, "Allowed content types: "+strings.Join(rule.ContentTypes, ", "))
	case KindExtensions:
		appendDescription(schema, "Allowed file extensions: "+strings.Join(rule.Extensions, ", "))
	}
}

// matchProperty finds the property schema for a rule member, tolerating the
// casing difference between the rule registry's member names and the
// schema's property names: exact match, then first-letter-lowercased, then
// case-insensitive scan.
func matchProperty(obj *openapi3.Schema, member string) *openapi3.Schema {
	if obj.Properties == nil {
		return nil
	}
	if ref, ok := obj.Properties[member]; ok && ref != nil {
		return ref.Value
	}
	if ref, ok := obj.Properties[lowerFirst(member)]; ok && ref != nil {
		return ref.Value
	}
	for name, ref := range obj.Properties {
		if strings.EqualFold(name, member) && ref != nil {
			return ref.Value
		}
	}
	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// appendDescription accumulates descriptive constraints with ". " as the
// separator; descriptions never overwrite each other.
func appendDescription(schema *openapi3.Schema, text string) {
	if schema.Description == "" {
		schema.Description = text
		return
	}
	schema.Description += ". " + text
}
