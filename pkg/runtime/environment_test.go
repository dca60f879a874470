package runtime

import (
	"errors"
	"reflect"
	"testing"
)

func TestGlobalEnvironmentPredeclaresConstants(t *testing.T) {
	env := GlobalEnvironment()
	want := map[string]Value{
		"null":  NullValue{},
		"true":  BoolValue{Val: true},
		"false": BoolValue{Val: false},
	}
	for name, expected := range want {
		got, err := env.Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		if !Equal(got, expected) {
			t.Fatalf("%s = %s, want %s", name, got, expected)
		}
		if !env.IsConstant(name) {
			t.Fatalf("%s should be constant", name)
		}
	}
	if keys := env.Keys(); !reflect.DeepEqual(keys, []string{"false", "null", "true"}) {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestDeclareRejectsRedeclaration(t *testing.T) {
	env := GlobalEnvironment()
	if _, err := env.Declare("x", NumberValue{Val: 1}, false); err != nil {
		t.Fatalf("declare: %v", err)
	}
	if _, err := env.Declare("x", NumberValue{Val: 2}, false); !errors.Is(err, ErrRedeclared) {
		t.Fatalf("expected ErrRedeclared, got %v", err)
	}
	if _, err := env.Declare("true", NumberValue{Val: 2}, false); !errors.Is(err, ErrRedeclared) {
		t.Fatalf("expected ErrRedeclared for builtin, got %v", err)
	}
}

func TestAssignUpdatesNearestScope(t *testing.T) {
	global := GlobalEnvironment()
	if _, err := global.Declare("x", NumberValue{Val: 1}, false); err != nil {
		t.Fatalf("declare: %v", err)
	}
	child := global.Extend()
	if _, err := child.Assign("x", NumberValue{Val: 5}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	got, err := global.Lookup("x")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !Equal(got, NumberValue{Val: 5}) {
		t.Fatalf("expected parent binding to be updated, got %s", got)
	}
}

func TestAssignUndefinedFails(t *testing.T) {
	env := GlobalEnvironment()
	if _, err := env.Assign("missing", NumberValue{Val: 1}); !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("expected ErrUndefinedVariable, got %v", err)
	}
}

func TestAssignConstantFails(t *testing.T) {
	env := GlobalEnvironment()
	if _, err := env.Declare("k", NumberValue{Val: 5}, true); err != nil {
		t.Fatalf("declare: %v", err)
	}
	if _, err := env.Assign("k", NumberValue{Val: 6}); !errors.Is(err, ErrConstantAssignment) {
		t.Fatalf("expected ErrConstantAssignment, got %v", err)
	}
	if _, err := env.Extend().Assign("null", NumberValue{Val: 0}); !errors.Is(err, ErrConstantAssignment) {
		t.Fatalf("expected ErrConstantAssignment for null, got %v", err)
	}
	got, _ := env.Lookup("k")
	if !Equal(got, NumberValue{Val: 5}) {
		t.Fatalf("constant changed to %s", got)
	}
}

func TestShadowingAndScopeIsolation(t *testing.T) {
	global := GlobalEnvironment()
	if _, err := global.Declare("x", NumberValue{Val: 1}, true); err != nil {
		t.Fatalf("declare: %v", err)
	}
	child := global.Extend()
	if child.Parent() != global {
		t.Fatalf("child parent mismatch")
	}
	if _, err := child.Declare("x", NumberValue{Val: 2}, false); err != nil {
		t.Fatalf("shadowing declare: %v", err)
	}
	if _, err := child.Declare("y", NumberValue{Val: 3}, false); err != nil {
		t.Fatalf("declare y: %v", err)
	}
	// The shadow is mutable even though the outer binding is constant.
	if _, err := child.Assign("x", NumberValue{Val: 4}); err != nil {
		t.Fatalf("assign shadow: %v", err)
	}
	inner, _ := child.Lookup("x")
	if !Equal(inner, NumberValue{Val: 4}) {
		t.Fatalf("inner x = %s", inner)
	}

	outer, err := global.Lookup("x")
	if err != nil || !Equal(outer, NumberValue{Val: 1}) {
		t.Fatalf("outer x = %v (%v)", outer, err)
	}
	if _, err := global.Lookup("y"); !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("expected y to be invisible in parent, got %v", err)
	}
}

func TestLookupReturnsIndependentCopies(t *testing.T) {
	env := GlobalEnvironment()
	obj := NewObject()
	obj.Fields["a"] = NumberValue{Val: 1}
	if _, err := env.Declare("o", obj, false); err != nil {
		t.Fatalf("declare: %v", err)
	}
	obj.Fields["a"] = NumberValue{Val: 99}

	got, err := env.Lookup("o")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	got.(ObjectValue).Fields["b"] = NumberValue{Val: 2}

	again, _ := env.Lookup("o")
	want := NewObject()
	want.Fields["a"] = NumberValue{Val: 1}
	if !Equal(again, want) {
		t.Fatalf("environment state leaked: %s", again)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	env := NewEnvironment(nil)
	obj := NewObject()
	obj.Fields["n"] = NumberValue{Val: 1}
	if _, err := env.Declare("o", obj, false); err != nil {
		t.Fatalf("declare: %v", err)
	}
	snap := env.Snapshot()
	snap["o"].(ObjectValue).Fields["n"] = NumberValue{Val: 2}
	got, _ := env.Lookup("o")
	if got.String() != "{n: 1}" {
		t.Fatalf("snapshot mutation leaked: %s", got)
	}
}
