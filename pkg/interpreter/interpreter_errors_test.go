package interpreter

import (
	"errors"
	"testing"

	"mica/interpreter-go/pkg/ast"
	"mica/interpreter-go/pkg/lexer"
	"mica/interpreter-go/pkg/parser"
	"mica/interpreter-go/pkg/runtime"
)

func TestExecuteErrorSentinels(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   error
	}{
		{"constant reassignment", "const k = 5; k = 6;", runtime.ErrConstantAssignment},
		{"constant without initializer", "const c;", parser.ErrConstWithoutInitializer},
		{"syntax", "let = 1;", parser.ErrSyntax},
		{"invalid character", "let x = 1 @ 2;", lexer.ErrInvalidCharacter},
		{"non ascii", "let é = 1;", lexer.ErrNonASCII},
		{"redeclared", "let x = 1; let x = 2;", runtime.ErrRedeclared},
		{"undefined", "y", runtime.ErrUndefinedVariable},
		{"undefined assignment", "y = 1;", runtime.ErrUndefinedVariable},
		{"shorthand unresolved", "let o = { x: 1, y }; let y = 2; o.y", runtime.ErrUndefinedVariable},
		{"division by zero", "10 / (5 - 5)", ErrDivisionByZero},
		{"modulo by zero", "10 % 0", ErrDivisionByZero},
		{"not an object", "let n = 1; n.x", ErrNotObject},
		{"nested not an object", "let o = { a: 1 }; o.a.b", ErrNotObject},
		{"missing field", "let o = { a: 1 }; o.b", ErrMissingField},
		{"missing computed field", "let o = { a: 1 }; o[1]", ErrMissingField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New().Execute(tc.source)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConstantSurvivesFailedReassignment(t *testing.T) {
	interp := New()
	expectNumber(t, mustExecute(t, interp, "const k = 5; k"), 5)
	if _, err := interp.Execute("k = 6;"); !errors.Is(err, runtime.ErrConstantAssignment) {
		t.Fatalf("expected ErrConstantAssignment, got %v", err)
	}
	expectNumber(t, mustExecute(t, interp, "k"), 5)
}

func TestStatementsBeforeErrorKeepTheirEffects(t *testing.T) {
	interp := New()
	if _, err := interp.Execute("let a = 1; let b = missing; let c = 3;"); !errors.Is(err, runtime.ErrUndefinedVariable) {
		t.Fatalf("expected ErrUndefinedVariable, got %v", err)
	}
	expectNumber(t, mustExecute(t, interp, "a"), 1)
	if _, err := interp.Execute("c"); !errors.Is(err, runtime.ErrUndefinedVariable) {
		t.Fatalf("expected c to be undeclared, got %v", err)
	}
}

func TestAssignmentToNonIdentifierFails(t *testing.T) {
	env := runtime.GlobalEnvironment()
	_, err := Evaluate(env, ast.Assign(ast.Member(ast.ID("o"), "x"), ast.Num(1)))
	if !errors.Is(err, ErrInvalidAssignee) {
		t.Fatalf("expected ErrInvalidAssignee, got %v", err)
	}
	if _, err := New().Execute("o.x = 1;"); !errors.Is(err, ErrInvalidAssignee) {
		t.Fatalf("expected ErrInvalidAssignee from source, got %v", err)
	}
}

func TestErrorMessagesNameTheCulprit(t *testing.T) {
	cases := map[string]string{
		"missing":            "variable is not defined: missing",
		"const k = 1; k = 2;": "cannot reassign constant 'k'",
		"let x = 1 @ 2;":     "invalid character '@'",
	}
	for source, want := range cases {
		_, err := New().Execute(source)
		if err == nil || err.Error() != want {
			t.Fatalf("execute %q: expected %q, got %v", source, want, err)
		}
	}
}

func TestEvaluateRequiresEnvironment(t *testing.T) {
	if _, err := Evaluate(nil, ast.Num(1)); err == nil {
		t.Fatalf("expected error for nil environment")
	}
}
