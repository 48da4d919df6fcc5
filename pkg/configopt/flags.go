// SPDX-License-Identifier: MPL-2.0

package configopt

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

type (
	// flagValue is the pflag.Value behind every generated flag. It starts
	// absent so an unsupplied flag never produces a value.
	flagValue struct {
		kind    FlagKind
		metavar string
		text    string
		parsed  Value
	}

	// flagBinding maps a generated flag back to its option.
	flagBinding struct {
		id     string
		group  string
		option string
		tag    string
		flag   *pflag.Flag
		value  *flagValue
	}

	// flagTable is the side table of generated flags keyed by internal
	// identifier, kept in registration order.
	flagTable struct {
		order []string
		byID  map[string]*flagBinding
	}
)

func (v *flagValue) String() string { return v.text }

func (v *flagValue) Set(s string) error {
	if v.kind == KindBool {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", s)
		}
		v.text = s
		v.parsed = Some(b)
		return nil
	}
	v.text = s
	v.parsed = Some(s)
	return nil
}

// Type doubles as the usage argument label; pflag prints it after the flag.
func (v *flagValue) Type() string {
	if v.kind == KindBool {
		return "bool"
	}
	return v.metavar
}

func newFlagTable() *flagTable {
	return &flagTable{byID: make(map[string]*flagBinding)}
}

func (t *flagTable) add(b *flagBinding) {
	if _, ok := t.byID[b.id]; !ok {
		t.order = append(t.order, b.id)
	}
	t.byID[b.id] = b
}

func (t *flagTable) lookup(id string) (*flagBinding, bool) {
	b, ok := t.byID[id]
	return b, ok
}

// bindings returns the table entries in registration order.
func (t *flagTable) bindings() []*flagBinding {
	out := make([]*flagBinding, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}
