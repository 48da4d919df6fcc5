// SPDX-License-Identifier: MPL-2.0

package configopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want any
	}{
		{"True", true},
		{"true", true},
		{"Yes", true},
		{"yes", true},
		{"False", false},
		{"false", false},
		{"No", false},
		{"no", false},
		{"TRUE", "TRUE"},
		{"on", "on"},
		{"1", "1"},
		{"", ""},
		{" yes", " yes"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got := ParseLiteral(tt.text)
			assert.True(t, got.IsPresent())
			assert.Equal(t, tt.want, got.Interface())
		})
	}
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Empty(t, None().String())
	assert.Equal(t, "true", Some(true).String())
	assert.Equal(t, "false", Some(false).String())
	assert.Equal(t, "1", Some(1).String())
	assert.Equal(t, "http://x", Some("http://x").String())
	assert.Empty(t, Some(nil).String())
}

func TestValue_StringReadsBack(t *testing.T) {
	t.Parallel()

	for _, v := range []Value{Some(true), Some(false), Some("yes please"), Some("")} {
		back := ParseLiteral(v.String())
		assert.True(t, v.Equal(back), "value %#v read back as %#v", v.Interface(), back.Interface())
	}
}

func TestValue_Presence(t *testing.T) {
	t.Parallel()

	var zero Value
	assert.False(t, zero.IsPresent())
	assert.Nil(t, zero.Interface())
	assert.True(t, zero.Equal(None()))

	empty := Some("")
	assert.True(t, empty.IsPresent())
	assert.False(t, empty.Equal(None()))

	b, ok := Some(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = Some("true").Bool()
	assert.False(t, ok)
}
