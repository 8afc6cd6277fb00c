// Package callable holds the runtime representations that need both a
// value.Value and a captured environment.Environment — user functions,
// classes, and instances — kept out of package value to avoid an import
// cycle (environment already depends on value for binding storage).
package callable

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/environment"
	"github.com/akashmaji946/veureka/value"
)

// Function is a closure: parameter names, body statements, and the
// environment active at its definition.
type Function struct {
	Name   string
	Params []string
	Body   []ast.Node
	Env    *environment.Environment
}

func (*Function) Type() string { return "function" }
func (f *Function) String() string {
	return fmt.Sprintf("<function %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}

// Bind returns a fresh Function whose closure is a child of f's own,
// with self bound to receiver. The original Function is left untouched.
func (f *Function) Bind(receiver value.Value) *Function {
	child := environment.New(f.Env)
	child.Define("self", receiver, false)
	return &Function{Name: f.Name, Params: f.Params, Body: f.Body, Env: child}
}

// Method is one named function in a Class's declaration order.
type Method struct {
	Name string
	Fn   *Function
}

// Class is a user-defined type: a name and its methods, in the order
// they were declared.
type Class struct {
	Name    string
	Methods []Method
}

func (*Class) Type() string     { return "class" }
func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Name) }

// Method looks up a method by name, first hit wins (declaration order).
func (c *Class) Method(name string) (*Function, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m.Fn, true
		}
	}
	return nil, false
}

// Field is one named instance field in insertion order.
type Field struct {
	Name  string
	Value value.Value
}

// Instance is a live object: its class and its own ordered field list.
// Method lookup consults fields first, then the class's methods.
type Instance struct {
	Class  *Class
	Fields []Field
}

func (*Instance) Type() string     { return "instance" }
func (i *Instance) String() string { return fmt.Sprintf("<instance %s>", i.Class.Name) }

// GetField returns a field's value and whether it was present.
func (i *Instance) GetField(name string) (value.Value, bool) {
	for _, f := range i.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// SetField overwrites an existing field in place, or appends a new one.
func (i *Instance) SetField(name string, v value.Value) {
	for idx, f := range i.Fields {
		if f.Name == name {
			i.Fields[idx].Value = v
			return
		}
	}
	i.Fields = append(i.Fields, Field{Name: name, Value: v})
}
