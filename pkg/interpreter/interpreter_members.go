package interpreter

import (
	"fmt"

	"mica/interpreter-go/pkg/ast"
	"mica/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateMemberExpression(expr *ast.MemberExpression, env *runtime.Environment) (runtime.Value, error) {
	target, err := i.memberTarget(expr, env)
	if err != nil {
		return nil, err
	}
	key, err := i.memberKey(expr, env)
	if err != nil {
		return nil, err
	}
	field, ok := target.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrMissingField, key, target)
	}
	return field, nil
}

// memberTarget resolves the object being indexed. A plain identifier is looked
// up by name; anything else is evaluated first.
func (i *Interpreter) memberTarget(expr *ast.MemberExpression, env *runtime.Environment) (runtime.ObjectValue, error) {
	var (
		val  runtime.Value
		err  error
		name string
	)
	if ident, ok := expr.Object.(*ast.Identifier); ok {
		name = ident.Name
		val, err = env.Lookup(ident.Name)
	} else {
		val, err = i.evaluateExpression(expr.Object, env)
	}
	if err != nil {
		return runtime.ObjectValue{}, err
	}
	obj, ok := val.(runtime.ObjectValue)
	if !ok {
		if name != "" {
			return runtime.ObjectValue{}, fmt.Errorf("%w: %s is %s", ErrNotObject, name, runtime.Render(val))
		}
		return runtime.ObjectValue{}, fmt.Errorf("%w: %s", ErrNotObject, runtime.Render(val))
	}
	return obj, nil
}

func (i *Interpreter) memberKey(expr *ast.MemberExpression, env *runtime.Environment) (string, error) {
	if !expr.Computed {
		ident, ok := expr.Property.(*ast.Identifier)
		if !ok {
			return "", fmt.Errorf("member property must be an identifier")
		}
		return ident.Name, nil
	}
	val, err := i.evaluateExpression(expr.Property, env)
	if err != nil {
		return "", err
	}
	return runtime.Render(val), nil
}
