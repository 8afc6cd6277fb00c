// Package environment implements Veureka's lexically nested name→binding
// mapping: a frame of bindings plus a parent pointer, with
// const-protection on assignment.
package environment

import "github.com/akashmaji946/veureka/value"

// binding pairs a value with its const-ness. The const flag is fixed at
// definition time and checked by Assign.

type binding struct {
	value value.Value
	isConst bool
}

// Environment is one scope frame: a set of name bindings and a pointer
// to the lexically enclosing frame (nil for the global scope).
type Environment struct {
	vars   map[string]*binding
	parent *Environment
}

// New creates a scope frame nested inside parent (nil for the global
// frame).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]*binding), parent: parent}
}

// Get walks the parent chain and returns the first binding found.
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.vars[name]; ok {
			return b.value, true
		}
	}
	return nil, false
}

// Define creates or overwrites a binding in the current frame only,
// shadowing any binding of the same name in an outer frame.
func (e *Environment) Define(name string, v value.Value, isConst bool) {
	e.vars[name] = &binding{value: v, isConst: isConst}
}

// AssignErr is returned by Assign when name is bound const.
type AssignErr struct{ Name string }

func (err *AssignErr) Error() string {
	return "cannot assign to const binding: " + err.Name
}

// Assign mutates the nearest enclosing binding for name. If no binding
// exists anywhere in the chain, it defines a new non-const binding in
// the current frame instead (per Veureka's plain-assignment rule).
// Returns an *AssignErr if the binding it found is const.
func (e *Environment) Assign(name string, v value.Value) error {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.vars[name]; ok {
			if b.isConst {
				return &AssignErr{Name: name}
			}
			b.value = v
			return nil
		}
	}
	e.Define(name, v, false)
	return nil
}

// IsConst reports whether name resolves to a const binding anywhere in
// the chain.
func (e *Environment) IsConst(name string) bool {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.vars[name]; ok {
			return b.isConst
		}
	}
	return false
}

// Names returns the bound names in this frame only, for REPL `vars`.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for n := range e.vars {
		names = append(names, n)
	}
	return names
}
