// Package catalog declares the contract shapes of each API version and the
// validation-rule descriptors that annotate them. Registering the shapes
// with the document builder is what populates the rule registry, so rule
// lookup stays an explicit map with no runtime reflection.
package catalog

import (
	v1 "github.com/verctl/verctl/api/v1"
	v2 "github.com/verctl/verctl/api/v2"
	"github.com/verctl/verctl/internal/contract"
	"github.com/verctl/verctl/internal/rules"
)

// Register binds every version's shapes to the builder. Versions without an
// entry here produce an empty (but valid) document.
func Register(b *contract.Builder) {
	b.RegisterShapes("v1", v1Shapes()...)
	b.RegisterShapes("v2", v2Shapes()...)
}

func v1Shapes() []contract.Shape {
	return []contract.Shape{
		{
			Name:   "Project",
			Sample: v1.Project{},
			Rules: rules.Descriptor{
				"Name": {
					rules.NotEmpty(),
					rules.MaxLength(200),
				},
				"Slug": {
					rules.NotEmpty(),
					rules.Regex(`^[a-z0-9-]+$`),
				},
				"Description": {
					rules.MaxLength(2000),
				},
				"OwnerEmail": {
					rules.NotEmpty(),
					rules.Email(),
				},
				"QuotaPerDay": {
					rules.Between(1, 100000),
				},
			},
			Parameters: []contract.Parameter{
				{
					Name:   "limit",
					In:     "query",
					Sample: int32(0),
					Rules: []rules.Rule{
						rules.NotEmpty(),
						rules.Between(1, 1000),
					},
				},
				{
					Name:   "labelSelector",
					In:     "query",
					Sample: "",
					Rules: []rules.Rule{
						rules.MaxLength(512),
					},
				},
			},
		},
		{
			Name:   "Member",
			Sample: v1.Member{},
			Enums: map[string][]string{
				"role": v1.RoleMembers(),
			},
			Rules: rules.Descriptor{
				"Name": {
					rules.NotEmpty(),
					rules.LengthRange(2, 100),
				},
				"Email": {
					rules.NotEmpty(),
					rules.Email(),
				},
				"Role": {
					rules.EnumOf(v1.RoleMembers()...),
				},
			},
		},
		{
			Name:   "Artifact",
			Sample: v1.Artifact{},
			Rules: rules.Descriptor{
				"FileName": {
					rules.NotEmpty(),
					rules.MaxLength(255),
				},
				"Payload": {
					rules.MaxSize(10 * 1024 * 1024),
					rules.AllowedContentTypes("application/json", "application/yaml"),
					rules.AllowedExtensions(".json", ".yaml", ".yml"),
				},
				"SizeBytes": {
					rules.Comparison(rules.OpGreaterOrEqual, 0),
				},
			},
		},
		{
			Name:   "BillingProfile",
			Sample: v1.BillingProfile{},
			Rules: rules.Descriptor{
				"HolderName": {
					rules.NotEmpty(),
					rules.MaxLength(100),
				},
				"CardNumber": {
					rules.NotEmpty(),
					rules.CreditCard(),
					rules.Regex(`^\d+$`),
				},
				"VatRate": {
					rules.Between(0, 1),
					rules.ScalePrecision(4, 5),
				},
			},
		},
	}
}

func v2Shapes() []contract.Shape {
	return []contract.Shape{
		{
			Name:   "Project",
			Sample: v2.Project{},
			Rules: rules.Descriptor{
				"Name": {
					rules.NotEmpty(),
					rules.MaxLength(200),
				},
				"DisplayName": {
					rules.LengthRange(3, 100),
				},
				"Slug": {
					rules.NotEmpty(),
					rules.Regex(`^[a-z0-9-]+$`),
				},
				"OwnerEmail": {
					rules.NotEmpty(),
					rules.Email(),
				},
				"QuotaPerDay": {
					rules.Comparison(rules.OpGreaterThan, 0),
					rules.Comparison(rules.OpLessOrEqual, 1000000),
				},
			},
			Parameters: []contract.Parameter{
				{
					Name:   "limit",
					In:     "query",
					Sample: int32(0),
					Rules: []rules.Rule{
						rules.Between(1, 1000),
					},
				},
				{
					Name:   "continue",
					In:     "query",
					Sample: "",
					Rules: []rules.Rule{
						rules.MaxLength(1024),
						rules.Regex(`^[a-zA-Z0-9]+$`),
					},
				},
			},
		},
		{
			Name:   "Member",
			Sample: v2.Member{},
			Enums: map[string][]string{
				"role": v2.RoleMembers(),
			},
			Rules: rules.Descriptor{
				"Name": {
					rules.NotEmpty(),
					rules.LengthRange(2, 100),
				},
				"Email": {
					rules.NotEmpty(),
					rules.Email(),
				},
				"Role": {
					rules.EnumOf(v2.RoleMembers()...),
					rules.Equality(rules.OpNotEqual, "owner"),
				},
			},
		},
		{
			Name:   "Artifact",
			Sample: v2.Artifact{},
			Rules: rules.Descriptor{
				"FileName": {
					rules.NotEmpty(),
					rules.MaxLength(255),
				},
				"Digest": {
					rules.Regex(`^sha256:[a-f0-9]{64}$`),
				},
				"Payload": {
					rules.MaxSize(50 * 1024 * 1024),
					rules.AllowedContentTypes("application/json", "application/yaml", "application/zip"),
					rules.AllowedExtensions(".json", ".yaml", ".yml", ".zip"),
				},
				"SizeBytes": {
					rules.Comparison(rules.OpGreaterOrEqual, 0),
				},
			},
		},
	}
}
