// Package catalog is the static registry of semantic fields: which stores
// back each field, in what precedence order, what constraints apply, and
// which legacy placeholder values must be treated as absent.
package catalog

import (
	"fmt"
	"strings"

	"github.com/meettonyg/guestify-backend/internal/pkg/errors"
)

type Group string

const (
	GroupPositioning Group = "positioning"
	GroupTopic       Group = "topic"
	GroupQuestion    Group = "question"
)

func ParseGroup(raw string) (Group, error) {
	switch Group(strings.ToLower(strings.TrimSpace(raw))) {
	case GroupPositioning:
		return GroupPositioning, nil
	case GroupTopic:
		return GroupTopic, nil
	case GroupQuestion:
		return GroupQuestion, nil
	}
	return "", fmt.Errorf("unknown group %q: %w", raw, errors.ErrFieldNotConfigured)
}

type StoreID string

const (
	StoreAttribute  StoreID = "attribute"
	StoreSubmission StoreID = "submission"
)

// StoreRef addresses one field in one backing store. For the attribute
// store Key is the meta key; for the submission store it is the numeric
// legacy field ID in decimal form.
type StoreRef struct {
	Store StoreID
	Key   string
}

type Constraints struct {
	MinLen int
	MaxLen int
}

// FieldDefinition is immutable after catalog construction. Stores is the
// read precedence order; Stores[0] is also the write primary, any further
// entries are legacy mirrors.
type FieldDefinition struct {
	Name        string
	Group       Group
	Stores      []StoreRef
	Constraints Constraints
	Poisoned    []string
}

// IsPoisoned reports whether v matches the field's denylist. Matching is
// trimmed, case-insensitive and exact, never substring, so legitimate user
// text containing a banned phrase is not rejected.
func (d FieldDefinition) IsPoisoned(v string) bool {
	needle := strings.ToLower(strings.TrimSpace(v))
	if needle == "" {
		return false
	}
	for _, p := range d.Poisoned {
		if needle == strings.ToLower(strings.TrimSpace(p)) {
			return true
		}
	}
	return false
}

// GroupSpec lists a group's fields in display order. MinFilled is the
// minimum count of non-empty entries a save must carry for the group
// operation to count as successful.
type GroupSpec struct {
	Group     Group
	Fields    []string
	MinFilled int
}

type Catalog struct {
	defs   map[string]FieldDefinition
	groups map[Group]GroupSpec
}

// CompositeKey is the attribute-store key holding the denormalized
// positioning statement. It is a legacy-compatibility cache, always
// regenerable by recomposition.
const CompositeKey = "hook_complete"

func New(defs []FieldDefinition, groups []GroupSpec) (*Catalog, error) {
	c := &Catalog{
		defs:   make(map[string]FieldDefinition, len(defs)),
		groups: make(map[Group]GroupSpec, len(groups)),
	}
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("catalog: field definition with empty name")
		}
		if _, dup := c.defs[d.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate field %q", d.Name)
		}
		if len(d.Stores) == 0 {
			return nil, fmt.Errorf("catalog: field %q has no backing store", d.Name)
		}
		c.defs[d.Name] = d
	}
	for _, g := range groups {
		if _, dup := c.groups[g.Group]; dup {
			return nil, fmt.Errorf("catalog: duplicate group %q", g.Group)
		}
		c.groups[g.Group] = g
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate runs at construction so a field referenced by any group but
// missing from the catalog fails at startup, not at first use.
func (c *Catalog) validate() error {
	for _, g := range c.groups {
		for _, name := range g.Fields {
			d, ok := c.defs[name]
			if !ok {
				return fmt.Errorf("catalog: group %q references %q: %w", g.Group, name, errors.ErrFieldNotConfigured)
			}
			if d.Group != g.Group {
				return fmt.Errorf("catalog: field %q declares group %q but is listed under %q", name, d.Group, g.Group)
			}
		}
	}
	for name, d := range c.defs {
		if _, ok := c.groups[d.Group]; !ok {
			return fmt.Errorf("catalog: field %q belongs to undeclared group %q", name, d.Group)
		}
	}
	return nil
}

func (c *Catalog) GetDefinition(name string) (FieldDefinition, error) {
	d, ok := c.defs[name]
	if !ok {
		return FieldDefinition{}, fmt.Errorf("field %q: %w", name, errors.ErrFieldNotConfigured)
	}
	return d, nil
}

func (c *Catalog) GroupSpec(group Group) (GroupSpec, error) {
	g, ok := c.groups[group]
	if !ok {
		return GroupSpec{}, fmt.Errorf("group %q: %w", group, errors.ErrFieldNotConfigured)
	}
	return g, nil
}

// StoreIDs returns every store referenced by any field, so wiring can fail
// fast when an adapter is missing.
func (c *Catalog) StoreIDs() []StoreID {
	seen := map[StoreID]bool{}
	var out []StoreID
	for _, d := range c.defs {
		for _, ref := range d.Stores {
			if !seen[ref.Store] {
				seen[ref.Store] = true
				out = append(out, ref.Store)
			}
		}
	}
	return out
}
