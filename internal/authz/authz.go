// Package authz implements the ownership policy applied before mutations.
package authz

import "github.com/gofrs/uuid/v5"

// Decision is the outcome of an ownership check.
type Decision int

const (
	// Deny blocks the mutation.
	Deny Decision = iota
	// Allow permits the mutation.
	Allow
)

// OwnerOnly decides whether caller may mutate a resource: only the identity
// that created it may. There is no admin bypass and no delegation.
func OwnerOnly(ownerID, callerID uuid.UUID) Decision {
	if ownerID != uuid.Nil && ownerID == callerID {
		return Allow
	}
	return Deny
}
