package interpreter

import (
	"fmt"

	"mica/interpreter-go/pkg/ast"
	"mica/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumericLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.Identifier:
		return env.Lookup(n.Name)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.AssignmentExpression:
		return i.evaluateAssignmentExpression(n, env)
	case *ast.ObjectLiteral:
		return i.evaluateObjectLiteral(n, env)
	case *ast.PropertyLiteral:
		return i.evaluatePropertyLiteral(n, env)
	case *ast.MemberExpression:
		return i.evaluateMemberExpression(n, env)
	case *ast.CallExpression:
		// Calls parse but nothing is callable yet.
		return runtime.NullValue{}, nil
	case nil:
		return nil, fmt.Errorf("unsupported expression: <nil>")
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	ln, lok := left.(runtime.NumberValue)
	rn, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return runtime.NullValue{}, nil
	}
	return applyArithmetic(expr.Operator, ln.Val, rn.Val)
}

func applyArithmetic(op ast.Operator, left, right int64) (runtime.Value, error) {
	switch op {
	case ast.OpAdd:
		return runtime.NumberValue{Val: left + right}, nil
	case ast.OpSub:
		return runtime.NumberValue{Val: left - right}, nil
	case ast.OpMul:
		return runtime.NumberValue{Val: left * right}, nil
	case ast.OpDiv, ast.OpMod:
		if right == 0 {
			return nil, fmt.Errorf("%w: %d %s 0", ErrDivisionByZero, left, op)
		}
		if op == ast.OpDiv {
			return runtime.NumberValue{Val: left / right}, nil
		}
		return runtime.NumberValue{Val: left % right}, nil
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", op)
	}
}

func (i *Interpreter) evaluateAssignmentExpression(expr *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	target, ok := expr.Assignee.(*ast.Identifier)
	if !ok {
		kind := "<nil>"
		if expr.Assignee != nil {
			kind = string(expr.Assignee.NodeType())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidAssignee, kind)
	}
	value, err := i.evaluateExpression(expr.Value, env)
	if err != nil {
		return nil, err
	}
	return env.Assign(target.Name, value)
}

func (i *Interpreter) evaluateObjectLiteral(expr *ast.ObjectLiteral, env *runtime.Environment) (runtime.Value, error) {
	obj := runtime.NewObject()
	for _, prop := range expr.Properties {
		val, err := i.evaluatePropertyLiteral(prop, env)
		if err != nil {
			return nil, err
		}
		obj.Fields[prop.Key] = val
	}
	return obj, nil
}

func (i *Interpreter) evaluatePropertyLiteral(prop *ast.PropertyLiteral, env *runtime.Environment) (runtime.Value, error) {
	if prop.IsShorthand() {
		return env.Lookup(prop.Key)
	}
	return i.evaluateExpression(prop.Value, env)
}
