package ast

type NodeType string

const (
	NodeProgram              NodeType = "Program"
	NodeVariableDeclaration  NodeType = "VariableDeclaration"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeMemberExpression     NodeType = "MemberExpression"
	NodeCallExpression       NodeType = "CallExpression"
	NodeIdentifier           NodeType = "Identifier"
	NodeNumericLiteral       NodeType = "NumericLiteral"
	NodePropertyLiteral      NodeType = "PropertyLiteral"
	NodeObjectLiteral        NodeType = "ObjectLiteral"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Program is the root of every parsed source.

type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	if statements == nil {
		statements = []Statement{}
	}
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}

// Statements

type VariableDeclaration struct {
	nodeImpl
	statementMarker

	Constant   bool       `json:"constant"`
	Identifier string     `json:"identifier"`
	Value      Expression `json:"value"`
}

func NewVariableDeclaration(constant bool, identifier string, value Expression) *VariableDeclaration {
	return &VariableDeclaration{nodeImpl: newNodeImpl(NodeVariableDeclaration), Constant: constant, Identifier: identifier, Value: value}
}

// Expressions

type AssignmentExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Assignee Expression `json:"assignee"`
	Value    Expression `json:"value"`
}

func NewAssignmentExpression(assignee Expression, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Assignee: assignee, Value: value}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
	Operator Operator   `json:"operator"`
}

func NewBinaryExpression(operator Operator, left Expression, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Left: left, Right: right, Operator: operator}
}

// Operator is one of the five arithmetic operator characters.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpMod Operator = '%'
)

func (o Operator) String() string { return string(rune(o)) }

// MarshalText keeps the operator readable in JSON dumps.
func (o Operator) MarshalText() ([]byte, error) { return []byte{byte(o)}, nil }

type MemberExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object   Expression `json:"object"`
	Property Expression `json:"property"`
	Computed bool       `json:"computed"`
}

func NewMemberExpression(object Expression, property Expression, computed bool) *MemberExpression {
	return &MemberExpression{nodeImpl: newNodeImpl(NodeMemberExpression), Object: object, Property: property, Computed: computed}
}

type CallExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Caller Expression   `json:"caller"`
	Args   []Expression `json:"args"`
}

func NewCallExpression(caller Expression, args []Expression) *CallExpression {
	if args == nil {
		args = []Expression{}
	}
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Caller: caller, Args: args}
}

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

type NumericLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value int64 `json:"value"`
}

func NewNumericLiteral(value int64) *NumericLiteral {
	return &NumericLiteral{nodeImpl: newNodeImpl(NodeNumericLiteral), Value: value}
}

// PropertyLiteral is one key of an object literal. A nil Value marks the
// shorthand form, which resolves the key as an identifier at evaluation time.
type PropertyLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Key   string     `json:"key"`
	Value Expression `json:"value,omitempty"`
}

func NewPropertyLiteral(key string, value Expression) *PropertyLiteral {
	return &PropertyLiteral{nodeImpl: newNodeImpl(NodePropertyLiteral), Key: key, Value: value}
}

// IsShorthand reports whether the property was written as a bare key.
func (p *PropertyLiteral) IsShorthand() bool {
	return p.Value == nil
}

type ObjectLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Properties []*PropertyLiteral `json:"properties"`
}

func NewObjectLiteral(properties []*PropertyLiteral) *ObjectLiteral {
	if properties == nil {
		properties = []*PropertyLiteral{}
	}
	return &ObjectLiteral{nodeImpl: newNodeImpl(NodeObjectLiteral), Properties: properties}
}
