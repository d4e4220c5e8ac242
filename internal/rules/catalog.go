package rules

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Catalog maps every canonical identifier and alias to its owning rule
// descriptor. A catalog is built once and never mutated afterwards, so it is
// safe for concurrent use.
type Catalog struct {
	byIdentifier map[string]Descriptor
	descriptors  []Descriptor
}

// NewCatalog builds a catalog from the given descriptors. It fails if two
// descriptors share a canonical identifier or alias.
func NewCatalog(descriptors []Descriptor) (*Catalog, error) {
	byIdentifier := make(map[string]Descriptor)

	for _, descriptor := range descriptors {
		for _, identifier := range descriptor.AllIdentifiers() {
			if owner, exists := byIdentifier[identifier]; exists {
				return nil, errors.Newf(
					"identifier %q of rule %q is already registered to rule %q",
					identifier, descriptor.ID, owner.ID,
				)
			}

			byIdentifier[identifier] = descriptor
		}
	}

	sorted := make([]Descriptor, len(descriptors))
	copy(sorted, descriptors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	return &Catalog{
		byIdentifier: byIdentifier,
		descriptors:  sorted,
	}, nil
}

// Lookup resolves a canonical identifier or alias to its descriptor.
func (c *Catalog) Lookup(identifier string) (Descriptor, bool) {
	descriptor, ok := c.byIdentifier[identifier]

	return descriptor, ok
}

// Has reports whether identifier is a known canonical identifier or alias.
func (c *Catalog) Has(identifier string) bool {
	_, ok := c.byIdentifier[identifier]

	return ok
}

// Descriptors returns all descriptors ordered by canonical identifier.
func (c *Catalog) Descriptors() []Descriptor {
	return c.descriptors
}

// AllValidIdentifiers returns every canonical identifier and alias in the
// catalog, sorted.
func (c *Catalog) AllValidIdentifiers() []string {
	identifiers := make([]string, 0, len(c.byIdentifier))
	for identifier := range c.byIdentifier {
		identifiers = append(identifiers, identifier)
	}

	sort.Strings(identifiers)

	return identifiers
}
