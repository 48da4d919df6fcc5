// SPDX-License-Identifier: MPL-2.0

package configopt

import (
	"fmt"
	"reflect"
	"strconv"
)

// Literal spellings recognized as booleans when reading persisted values.
var (
	trueLiterals  = []string{"True", "true", "Yes", "yes"}
	falseLiterals = []string{"False", "false", "No", "no"}
)

// Value is a tagged slot value: either present with a payload, or absent.
// The zero Value is absent.
type Value struct {
	v  any
	ok bool
}

// Some returns a present Value holding v. A nil payload is still present.
func Some(v any) Value {
	return Value{v: v, ok: true}
}

// None returns an absent Value.
func None() Value {
	return Value{}
}

// IsPresent reports whether the value holds a payload.
func (v Value) IsPresent() bool { return v.ok }

// Get returns the payload and whether it is present.
func (v Value) Get() (any, bool) { return v.v, v.ok }

// Interface returns the payload, or nil when absent.
func (v Value) Interface() any {
	if !v.ok {
		return nil
	}
	return v.v
}

// Bool returns the payload as a bool. The second result is false when the
// value is absent or not a bool.
func (v Value) Bool() (bool, bool) {
	if !v.ok {
		return false, false
	}
	b, ok := v.v.(bool)
	return b, ok
}

// String returns the textual form written to the persisted file. Booleans use
// the lowercase spelling so they read back as booleans. Absent values render
// as the empty string.
func (v Value) String() string {
	if !v.ok {
		return ""
	}
	switch x := v.v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// Equal reports whether both values are absent, or both present with equal
// payloads.
func (v Value) Equal(other Value) bool {
	if v.ok != other.ok {
		return false
	}
	if !v.ok {
		return true
	}
	return reflect.DeepEqual(v.v, other.v)
}

// ParseLiteral converts persisted text into a Value. The literals True, true,
// Yes and yes become boolean true; False, false, No and no become boolean
// false. Any other text is kept verbatim as a string.
func ParseLiteral(text string) Value {
	for _, lit := range trueLiterals {
		if text == lit {
			return Some(true)
		}
	}
	for _, lit := range falseLiterals {
		if text == lit {
			return Some(false)
		}
	}
	return Some(text)
}
