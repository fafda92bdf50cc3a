package bolo

// Node is implemented by every AST node.
type Node interface {
	Pos() Position
}

// Expr is an expression node. The set of implementations is closed: only
// the types in this file carry the marker method.
type Expr interface {
	Node
	exprNode()
}

// TopLevel is one parsed construct at the outermost level: a *Function for
// definitions and bare expressions, or a *Prototype for extern
// declarations.
type TopLevel interface {
	Node
	topLevelNode()
}

// AnonFuncName is the prototype name given to bare top-level expressions.
// Identifiers cannot start with an underscore, so it can never collide with
// a user-defined function.
const AnonFuncName = "__anon_expr"

// Program holds the top-level units of a source text in input order.
type Program struct {
	Units []TopLevel
}

func (p *Program) Pos() Position {
	if len(p.Units) == 0 {
		return Position{}
	}
	return p.Units[0].Pos()
}

type NumberExpr struct {
	Value    float64
	position Position
}

func (e *NumberExpr) exprNode()     {}
func (e *NumberExpr) Pos() Position { return e.position }

type VariableExpr struct {
	Name     string
	position Position
}

func (e *VariableExpr) exprNode()     {}
func (e *VariableExpr) Pos() Position { return e.position }

type BinaryExpr struct {
	Op    byte
	Left  Expr
	Right Expr

	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }

type CallExpr struct {
	Callee   string
	Args     []Expr
	position Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }

// Prototype captures a function's name and parameter names. Parameter order
// defines call-site positional binding; duplicate names are not rejected at
// parse time.
type Prototype struct {
	Name     string
	Params   []string
	position Position
}

func (p *Prototype) topLevelNode() {}
func (p *Prototype) Pos() Position { return p.position }

// Function pairs a prototype with its single body expression. Bare
// top-level expressions are wrapped in a zero-parameter function named
// AnonFuncName so downstream consumers see one uniform shape.
type Function struct {
	Proto *Prototype
	Body  Expr

	position Position
}

func (f *Function) topLevelNode() {}
func (f *Function) Pos() Position { return f.position }

// IsAnon reports whether the function wraps a bare top-level expression.
func (f *Function) IsAnon() bool {
	return f.Proto != nil && f.Proto.Name == AnonFuncName
}
