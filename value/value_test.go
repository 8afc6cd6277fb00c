package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name     string
		v        Value
		expected bool
	}{
		{"nil", Nil{}, false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Number(0), false},
		{"nonzero", Number(1), true},
		{"negative", Number(-1), true},
		{"empty string", String(""), false},
		{"nonempty string", String("x"), true},
		{"empty list", NewList(), false},
		{"nonempty list", NewList(Number(1)), true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Truthy(tt.v), tt.name)
	}
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "3", Number(3).String())
	assert.Equal(t, "3", Number(3.0).String())
	assert.Equal(t, "3.5", Number(3.5).String())
	assert.Equal(t, "-2", Number(-2).String())
}

func TestNumberInt(t *testing.T) {
	assert.Equal(t, int64(3), Number(3.9).Int())
	assert.Equal(t, int64(-3), Number(-3.9).Int())
}

func TestListString(t *testing.T) {
	l := NewList(Number(1), String("a"), Bool(true))
	assert.Equal(t, `[1, "a", true]`, l.String())
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "nil", Nil{}.Type())
	assert.Equal(t, "number", Number(1).Type())
	assert.Equal(t, "string", String("x").Type())
	assert.Equal(t, "bool", Bool(true).Type())
	assert.Equal(t, "list", NewList().Type())
	assert.Equal(t, "map", NewMap().Type())
}

func TestMapInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("z", Number(1))
	m.Set("a", Number(2))
	m.Set("z", Number(3)) // overwrite: order unchanged

	assert.Equal(t, []string{"z", "a"}, m.Keys())
	assert.Equal(t, Number(3), m.Get("z"))
	assert.Equal(t, 2, m.Len())
}

func TestMapMissingKeyIsNil(t *testing.T) {
	m := NewMap()
	assert.Equal(t, Nil{}, m.Get("missing"))
	assert.False(t, m.Has("missing"))
}
