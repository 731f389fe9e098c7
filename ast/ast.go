// Package ast defines Bussin's abstract syntax tree as tagged Go struct
// types, one per node kind from spec.md §3.2. Each implements a marker
// interface (Stmt or Expr) rather than a visitor-pattern Accept method —
// Bussin's grammar is small and flat enough that a type switch in eval
// is simpler than the teacher's node-hierarchy-plus-visitor machinery,
// which exists there to support features (structs, enums) Bussin has
// none of.
package ast

// Node is satisfied by every AST node.
type Node interface {
	node()
}

// Stmt is satisfied by statement nodes.
type Stmt interface {
	Node
	stmt()
}

// Expr is satisfied by expression nodes. Every Expr is also a Stmt,
// since an expression is a valid statement (spec.md §4.2: stmt := ... | expr).
type Expr interface {
	Stmt
	expr()
}

// Program is the root node: an ordered list of statements.
type Program struct {
	Body []Stmt
}

func (*Program) node() {}
func (*Program) stmt() {}

// VarDeclaration is `let`/`const name (= value)?;`. Constant
// declarations must carry a Value (spec.md §3.2 invariant).
type VarDeclaration struct {
	Constant bool
	Name     string
	Value    Expr // nil when omitted (only legal for non-constant)
}

func (*VarDeclaration) node() {}
func (*VarDeclaration) stmt() {}

// FunctionDeclaration is `fn name(params) { body }`.
type FunctionDeclaration struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (*FunctionDeclaration) node() {}
func (*FunctionDeclaration) stmt() {}

// IfStatement is `if (test) { body } else alternate`. Alternate is
// always non-nil — an absent else becomes an empty BlockStatement
// (spec.md §4.2: "alternate is always present as an empty body").
type IfStatement struct {
	Test      Expr
	Body      []Stmt
	Alternate Stmt // either another *IfStatement, or a *BlockStatement
}

func (*IfStatement) node() {}
func (*IfStatement) stmt() {}

// BlockStatement is a bare `{ ... }` body used as an IfStatement
// alternate when no further `else if` chains.
type BlockStatement struct {
	Body []Stmt
}

func (*BlockStatement) node() {}
func (*BlockStatement) stmt() {}

// ForStatement is `for (init test; update) { body }`.
type ForStatement struct {
	Init   *VarDeclaration
	Test   Expr
	Update Expr // must be an *AssignmentExpr
	Body   []Stmt
}

func (*ForStatement) node() {}
func (*ForStatement) stmt() {}

// TryCatchStatement is `try { body } catch { handler }`. It sits under
// Statements in spec.md §3.2's node list, but the grammar (§4.2) threads
// it through the expression ladder (object_expr falls through to
// try_catch), and the evaluator contract (§4.3) gives it a value — its
// body's or handler's last result — so it also satisfies Expr.
type TryCatchStatement struct {
	Body    []Stmt
	Handler []Stmt
}

func (*TryCatchStatement) node() {}
func (*TryCatchStatement) stmt() {}
func (*TryCatchStatement) expr() {}

// AssignmentExpr is `target = value`. Target is either an *Identifier
// or a *MemberExpr (spec.md §4.3).
type AssignmentExpr struct {
	Target Expr
	Value  Expr
}

func (*AssignmentExpr) node() {}
func (*AssignmentExpr) stmt() {}
func (*AssignmentExpr) expr() {}

// MemberExpr is `object.property` or `object[property]`. When Computed
// is false, Property MUST be an *Identifier (spec.md §3.2 invariant).
type MemberExpr struct {
	Object   Expr
	Property Expr
	Computed bool
}

func (*MemberExpr) node() {}
func (*MemberExpr) stmt() {}
func (*MemberExpr) expr() {}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

func (*CallExpr) node() {}
func (*CallExpr) stmt() {}
func (*CallExpr) expr() {}

// BinaryExpr is `left operator right`. Operator is the raw lexeme
// (`+ - * / % == != < > && |`).
type BinaryExpr struct {
	Left     Expr
	Right    Expr
	Operator string
}

func (*BinaryExpr) node() {}
func (*BinaryExpr) stmt() {}
func (*BinaryExpr) expr() {}

// Identifier is a bare name reference.
type Identifier struct {
	Symbol string
}

func (*Identifier) node() {}
func (*Identifier) stmt() {}
func (*Identifier) expr() {}

// NumericLiteral is a parsed numeric constant.
type NumericLiteral struct {
	Value float64
}

func (*NumericLiteral) node() {}
func (*NumericLiteral) stmt() {}
func (*NumericLiteral) expr() {}

// StringLiteral is a parsed string constant.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) node() {}
func (*StringLiteral) stmt() {}
func (*StringLiteral) expr() {}

// ObjectLiteral is `{ prop, prop: value, ... }`.
type ObjectLiteral struct {
	Properties []Property
}

func (*ObjectLiteral) node() {}
func (*ObjectLiteral) stmt() {}
func (*ObjectLiteral) expr() {}

// Property is one entry of an ObjectLiteral. A nil Value marks
// shorthand — the value comes from the surrounding scope at evaluation
// time, looked up by Key (spec.md §3.2 invariant, §4.3).
type Property struct {
	Key   string
	Value Expr // nil ⇒ shorthand
}
