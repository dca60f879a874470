package interpreter

import (
	"errors"
	"testing"

	"mica/interpreter-go/pkg/lexer"
	"mica/interpreter-go/pkg/parser"
	"mica/interpreter-go/pkg/runtime"
)

func TestEvaluateProgramFromPipeline(t *testing.T) {
	tokens, err := lexer.Tokenize("let x = 10 * ( 10 / 10 ) - 1; x")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	interp := New()
	val, err := interp.EvaluateProgram(program)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	expectNumber(t, val, 9)
}

func TestNewWithEnvironmentSharesBindings(t *testing.T) {
	env := runtime.GlobalEnvironment()
	if _, err := Execute(env, "let shared = 4;"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	interp := NewWithEnvironment(env)
	if interp.GlobalEnvironment() != env {
		t.Fatalf("expected interpreter to use the supplied environment")
	}
	expectNumber(t, mustExecute(t, interp, "shared * 2"), 8)
	if NewWithEnvironment(nil).GlobalEnvironment() == nil {
		t.Fatalf("expected a fresh global environment for nil")
	}
}

func TestChildScopeIsolation(t *testing.T) {
	global := runtime.GlobalEnvironment()
	if _, err := Execute(global, "let x = 1;"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	child := global.Extend()
	if _, err := Execute(child, "let x = 2; let y = x + 1;"); err != nil {
		t.Fatalf("child evaluation failed: %v", err)
	}
	val, err := Execute(child, "y")
	if err != nil {
		t.Fatalf("child lookup failed: %v", err)
	}
	expectNumber(t, val, 3)

	val, err = Execute(global, "x")
	if err != nil {
		t.Fatalf("parent lookup failed: %v", err)
	}
	expectNumber(t, val, 1)
	if _, err := Execute(global, "y"); !errors.Is(err, runtime.ErrUndefinedVariable) {
		t.Fatalf("expected child binding to stay local, got %v", err)
	}
}

func TestAssignmentFromChildReachesParent(t *testing.T) {
	global := runtime.GlobalEnvironment()
	if _, err := Execute(global, "let total = 1;"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := Execute(global.Extend(), "total = total + 9;"); err != nil {
		t.Fatalf("child assignment failed: %v", err)
	}
	val, err := Execute(global, "total")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	expectNumber(t, val, 10)
}
