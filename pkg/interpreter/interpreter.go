package interpreter

import (
	"errors"
	"fmt"

	"mica/interpreter-go/pkg/ast"
	"mica/interpreter-go/pkg/parser"
	"mica/interpreter-go/pkg/runtime"
)

var (
	// ErrInvalidAssignee reports an assignment whose target is not an identifier.
	ErrInvalidAssignee = errors.New("invalid assignment target")

	// ErrNotObject reports member access on a value that is not an object.
	ErrNotObject = errors.New("value is not an object")

	// ErrMissingField reports member access naming a key the object lacks.
	ErrMissingField = errors.New("object has no such property")

	// ErrDivisionByZero reports `/` or `%` with a zero right operand.
	ErrDivisionByZero = errors.New("division by zero")
)

// Interpreter drives evaluation of Mica programs against one persistent
// global environment.
type Interpreter struct {
	global *runtime.Environment
}

// New returns an interpreter whose global environment holds null, true and
// false.
func New() *Interpreter {
	return &Interpreter{global: runtime.GlobalEnvironment()}
}

// NewWithEnvironment returns an interpreter evaluating against env.
func NewWithEnvironment(env *runtime.Environment) *Interpreter {
	if env == nil {
		env = runtime.GlobalEnvironment()
	}
	return &Interpreter{global: env}
}

// GlobalEnvironment returns the interpreter’s global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// EvaluateProgram executes program in the global environment and returns the
// value of its last statement.
func (i *Interpreter) EvaluateProgram(program *ast.Program) (runtime.Value, error) {
	return i.evaluateProgram(program, i.global)
}

// Execute tokenizes, parses and evaluates source in the global environment.
// Bindings made by statements that completed before an error are kept.
func (i *Interpreter) Execute(source string) (runtime.Value, error) {
	program, err := parser.ParseSource(source)
	if err != nil {
		return nil, err
	}
	return i.EvaluateProgram(program)
}

// Evaluate evaluates node in env.
func Evaluate(env *runtime.Environment, node ast.Node) (runtime.Value, error) {
	if env == nil {
		return nil, fmt.Errorf("interpreter: nil environment")
	}
	i := &Interpreter{global: env}
	switch n := node.(type) {
	case *ast.Program:
		return i.evaluateProgram(n, env)
	case ast.Statement:
		return i.evaluateStatement(n, env)
	default:
		return nil, fmt.Errorf("interpreter: unsupported node type %T", node)
	}
}

// Execute runs source through the full pipeline against env.
func Execute(env *runtime.Environment, source string) (runtime.Value, error) {
	return NewWithEnvironment(env).Execute(source)
}
