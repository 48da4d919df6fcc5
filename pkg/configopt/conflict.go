// SPDX-License-Identifier: MPL-2.0

package configopt

import (
	"maps"
	"slices"
)

// Conflicts maps a conflict tag to the group whose flag claimed it first on
// one invocation.
type Conflicts map[string]string

// claim records group as the owner of tag. It returns a ConflictError when a
// different group already owns the tag. An empty tag never conflicts.
func (c Conflicts) claim(tag, group string) error {
	if tag == "" {
		return nil
	}
	owner, ok := c[tag]
	if !ok {
		c[tag] = group
		return nil
	}
	if owner != group {
		return &ConflictError{Tag: tag, First: owner, Second: group}
	}
	return nil
}

// Owner returns the group that claimed tag.
func (c Conflicts) Owner(tag string) (string, bool) {
	g, ok := c[tag]
	return g, ok
}

// Tags returns the claimed tags in sorted order.
func (c Conflicts) Tags() []string {
	return slices.Sorted(maps.Keys(c))
}

func (c Conflicts) clone() Conflicts {
	return maps.Clone(c)
}
