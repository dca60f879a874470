package runtime

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ahrtr/gocontainer/set"
)

var (
	// ErrRedeclared reports a second declaration of a name in one scope.
	ErrRedeclared = errors.New("variable is already defined")

	// ErrUndefinedVariable reports a name bound in no enclosing scope.
	ErrUndefinedVariable = errors.New("variable is not defined")

	// ErrConstantAssignment reports assignment to a constant binding.
	ErrConstantAssignment = errors.New("cannot reassign constant")
)

// Environment provides lexical scoping for Mica runtime values.
type Environment struct {
	values    map[string]Value
	constants set.Interface
	parent    *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		constants: set.New(),
		parent:    parent,
	}
}

// GlobalEnvironment returns a fresh root scope with the constants null, true
// and false pre-declared.
func GlobalEnvironment() *Environment {
	env := NewEnvironment(nil)
	env.mustDeclareConstant("null", NullValue{})
	env.mustDeclareConstant("true", BoolValue{Val: true})
	env.mustDeclareConstant("false", BoolValue{Val: false})
	return env
}

func (e *Environment) mustDeclareConstant(name string, value Value) {
	if _, err := e.Declare(name, value, true); err != nil {
		panic(err)
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Extend creates a child scope of e.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}

// Declare binds name in this scope and returns a copy of the stored value.
func (e *Environment) Declare(name string, value Value, constant bool) (Value, error) {
	if existing, ok := e.values[name]; ok {
		return nil, fmt.Errorf("%w: %s = %s", ErrRedeclared, name, Render(existing))
	}
	if constant {
		e.constants.Add(name)
	}
	e.values[name] = Clone(value)
	return Clone(value), nil
}

// Assign updates the binding in the nearest scope that defines name.
func (e *Environment) Assign(name string, value Value) (Value, error) {
	scope, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	if scope.constants.Contains(name) {
		return nil, fmt.Errorf("%w '%s'", ErrConstantAssignment, name)
	}
	scope.values[name] = Clone(value)
	return Clone(value), nil
}

// Lookup retrieves a copy of the binding, searching outward through the
// scope chain.
func (e *Environment) Lookup(name string) (Value, error) {
	scope, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	return Clone(scope.values[name]), nil
}

// IsConstant reports whether the nearest binding of name is constant.
func (e *Environment) IsConstant(name string) bool {
	scope, err := e.resolve(name)
	if err != nil {
		return false
	}
	return scope.constants.Contains(name)
}

func (e *Environment) resolve(name string) (*Environment, error) {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.values[name]; ok {
			return scope, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

// Snapshot returns a deep copy of the bindings in this scope only.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = Clone(v)
	}
	return out
}

// Keys returns the bindings in sorted order (useful for determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
