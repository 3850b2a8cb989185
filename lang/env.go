package lang

import "fmt"

// Env implements a lexical environment chain. Every environment except
// the global one has exactly one parent, fixed at creation.
type Env struct {
	parent *Env
	values map[string]Value
}

// NewEnv creates an environment with optional parent.
func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		values: make(map[string]Value),
	}
}

// Define binds name to value in the current frame, shadowing any outer
// binding. Redefinition within the same frame overwrites.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Get retrieves a binding, searching innermost to outermost.
func (e *Env) Get(name string) (Value, error) {
	if val, ok := e.values[name]; ok {
		return val, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign updates an existing binding in the nearest frame that has one.
// Assignment never implicitly declares a new binding.
func (e *Env) Assign(name string, val Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, val)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// Parent returns the enclosing environment.
func (e *Env) Parent() *Env {
	return e.parent
}
