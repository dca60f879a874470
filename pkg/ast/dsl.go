package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Num(value int64) *NumericLiteral {
	return NewNumericLiteral(value)
}

// Statement helpers.

func Prog(statements ...Statement) *Program {
	return NewProgram(statements)
}

func Let(name string, value Expression) *VariableDeclaration {
	return NewVariableDeclaration(false, name, value)
}

func Const(name string, value Expression) *VariableDeclaration {
	return NewVariableDeclaration(true, name, value)
}

// Expression helpers.

func Assign(assignee Expression, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(assignee, value)
}

func Bin(op Operator, left Expression, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Add(left Expression, right Expression) *BinaryExpression {
	return Bin(OpAdd, left, right)
}

func Sub(left Expression, right Expression) *BinaryExpression {
	return Bin(OpSub, left, right)
}

func Mul(left Expression, right Expression) *BinaryExpression {
	return Bin(OpMul, left, right)
}

func Div(left Expression, right Expression) *BinaryExpression {
	return Bin(OpDiv, left, right)
}

func Mod(left Expression, right Expression) *BinaryExpression {
	return Bin(OpMod, left, right)
}

// Member builds dotted access: object.name.
func Member(object Expression, name string) *MemberExpression {
	return NewMemberExpression(object, ID(name), false)
}

// Index builds computed access: object[property].
func Index(object Expression, property Expression) *MemberExpression {
	return NewMemberExpression(object, property, true)
}

func Call(caller Expression, args ...Expression) *CallExpression {
	return NewCallExpression(caller, args)
}

func Prop(key string, value Expression) *PropertyLiteral {
	return NewPropertyLiteral(key, value)
}

func Short(key string) *PropertyLiteral {
	return NewPropertyLiteral(key, nil)
}

func Obj(properties ...*PropertyLiteral) *ObjectLiteral {
	return NewObjectLiteral(properties)
}
