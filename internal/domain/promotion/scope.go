package promotion

import (
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ScopeRole says whether a referenced product or category activates
// the promotion or receives its benefit.
type ScopeRole string

const (
	RoleActivator   ScopeRole = "activator"
	RoleBeneficiary ScopeRole = "beneficiary"
)

// ReferenceKind distinguishes product from category references
type ReferenceKind string

const (
	ReferenceProduct  ReferenceKind = "product"
	ReferenceCategory ReferenceKind = "category"
)

// Reference points at a product (by id) or a whole menu category (by name)
type Reference struct {
	Kind ReferenceKind
	Key  string
}

// ProductRef builds a product reference
func ProductRef(id uuid.UUID) Reference {
	return Reference{Kind: ReferenceProduct, Key: id.String()}
}

// CategoryRef builds a category reference
func CategoryRef(name string) Reference {
	return Reference{Kind: ReferenceCategory, Key: name}
}

// Matches reports whether a line with the given product and category
// falls under this reference.
func (r Reference) Matches(productID uuid.UUID, category string) bool {
	switch r.Kind {
	case ReferenceProduct:
		return r.Key == productID.String()
	case ReferenceCategory:
		return r.Key == category
	default:
		return false
	}
}

// ScopeEntry assigns a role to a reference
type ScopeEntry struct {
	Ref  Reference
	Role ScopeRole
}

// Scope maps the products and categories a promotion touches to their
// roles. A reference can appear at most once, so nothing can be both
// activator and beneficiary of the same promotion.
type Scope struct {
	entries []ScopeEntry
}

// NewScope builds a scope, rejecting duplicate references
func NewScope(entries []ScopeEntry) (Scope, error) {
	seen := make(map[Reference]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Role != RoleActivator && entry.Role != RoleBeneficiary {
			return Scope{}, shared.NewDomainError("INVALID_ROLE", "Unknown scope role")
		}
		if _, dup := seen[entry.Ref]; dup {
			return Scope{}, shared.NewDomainError("DUPLICATE_SCOPE_REFERENCE", "A product or category cannot appear twice in a promotion scope")
		}
		seen[entry.Ref] = struct{}{}
	}
	copied := make([]ScopeEntry, len(entries))
	copy(copied, entries)
	return Scope{entries: copied}, nil
}

// Entries returns a copy of the scope entries
func (s Scope) Entries() []ScopeEntry {
	copied := make([]ScopeEntry, len(s.entries))
	copy(copied, s.entries)
	return copied
}

// Activators returns the references holding the activator role
func (s Scope) Activators() []Reference {
	return s.referencesWithRole(RoleActivator)
}

// Beneficiaries returns the references holding the beneficiary role
func (s Scope) Beneficiaries() []Reference {
	return s.referencesWithRole(RoleBeneficiary)
}

// HasBeneficiaries reports whether any reference receives the benefit
func (s Scope) HasBeneficiaries() bool {
	return len(s.Beneficiaries()) > 0
}

// IsBeneficiary reports whether a line with the given product and
// category receives this promotion's benefit.
func (s Scope) IsBeneficiary(productID uuid.UUID, category string) bool {
	return s.matchesRole(RoleBeneficiary, productID, category)
}

// IsActivator reports whether a line with the given product and
// category counts toward this promotion's activation.
func (s Scope) IsActivator(productID uuid.UUID, category string) bool {
	return s.matchesRole(RoleActivator, productID, category)
}

func (s Scope) matchesRole(role ScopeRole, productID uuid.UUID, category string) bool {
	for _, entry := range s.entries {
		if entry.Role == role && entry.Ref.Matches(productID, category) {
			return true
		}
	}
	return false
}

func (s Scope) referencesWithRole(role ScopeRole) []Reference {
	var refs []Reference
	for _, entry := range s.entries {
		if entry.Role == role {
			refs = append(refs, entry.Ref)
		}
	}
	return refs
}
