// Package v2 holds the data shapes of the v2 API surface. It extends v1
// with display metadata and a finer-grained role model; billing moved to a
// separate service and is no longer part of this API.
package v2

import "time"

type Role int32

const (
	RoleUser Role = iota
	RoleAdmin
	RoleOwner
)

// RoleMembers lists the enum member names in declaration order.
func RoleMembers() []string {
	return []string{"User", "Admin", "Owner"}
}

type Project struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName,omitempty"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	OwnerEmail  string     `json:"ownerEmail"`
	QuotaPerDay int64      `json:"quotaPerDay"`
	Labels      []string   `json:"labels,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

type Member struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type Artifact struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	Payload     []byte `json:"payload,omitempty"`
	Digest      string `json:"digest,omitempty"`
}
