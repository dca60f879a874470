package interpreter

import (
	"fmt"

	"mica/interpreter-go/pkg/ast"
	"mica/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateProgram(program *ast.Program, env *runtime.Environment) (runtime.Value, error) {
	var last runtime.Value = runtime.NullValue{}
	if program == nil {
		return last, nil
	}
	for _, stmt := range program.Statements {
		val, err := i.evaluateStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		last = val
	}
	return last, nil
}

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.VariableDeclaration:
		return i.evaluateVariableDeclaration(n, env)
	case ast.Expression:
		return i.evaluateExpression(n, env)
	default:
		return nil, fmt.Errorf("unsupported statement type: %s", node.NodeType())
	}
}

func (i *Interpreter) evaluateVariableDeclaration(decl *ast.VariableDeclaration, env *runtime.Environment) (runtime.Value, error) {
	var value runtime.Value = runtime.NullValue{}
	if decl.Value != nil {
		val, err := i.evaluateExpression(decl.Value, env)
		if err != nil {
			return nil, err
		}
		value = val
	}
	return env.Declare(decl.Identifier, value, decl.Constant)
}
