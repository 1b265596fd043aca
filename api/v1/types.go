// Package v1 holds the data shapes of the v1 API surface.
package v1

import "time"

// Role is a project membership role. It is serialized as a lowerCamelCase
// string on the wire even though the Go representation is numeric.
type Role int32

const (
	RoleUser Role = iota
	RoleAdmin
)

// RoleMembers lists the enum member names in declaration order.
func RoleMembers() []string {
	return []string{"User", "Admin"}
}

// Project is a governed API project.
type Project struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	OwnerEmail  string     `json:"ownerEmail"`
	QuotaPerDay int32      `json:"quotaPerDay"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// Member is a user with access to a project.
type Member struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Artifact is an uploaded contract artifact attached to a project.
type Artifact struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	Payload     []byte `json:"payload,omitempty"`
}

// BillingProfile carries the payment details of a project owner.
type BillingProfile struct {
	HolderName string  `json:"holderName"`
	CardNumber string  `json:"cardNumber"`
	VatRate    float64 `json:"vatRate"`
}
