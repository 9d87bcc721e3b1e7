package semantic

import (
	"fmt"
	"strconv"

	"github.com/tychobrailleur/mjc/internal/ast"
	"github.com/tychobrailleur/mjc/internal/errors"
	"github.com/tychobrailleur/mjc/internal/lexer"
	"github.com/tychobrailleur/mjc/internal/types"
)

// checker carries the state a single depth-first walk over the program
// needs: which class/method we're inside (for "this" and field lookup)
// and the current block-scope chain (for local/parameter lookup). This
// collapses spec's separate in/out visitor hooks into the one
// recursive walk the teacher's own analyzer uses.
type checker struct {
	table  *ProgramTable
	class  *ClassInfo // nil while walking the main class
	method *MethodInfo
	scope  *Scope
	errs   []*errors.CompilerError
}

// TypeCheck walks prog against table, reporting every type error it
// finds and populating each expression node's type slot (via
// ast.Typed) along the way. Earlier-stage errors don't stop the walk:
// every class and method is still checked, with Undefined standing in
// wherever an earlier error already broke the type information for a
// subexpression.
func TypeCheck(prog *ast.Program, table *ProgramTable) []*errors.CompilerError {
	c := &checker{table: table}

	c.method = table.Main
	c.scope = NewScope()
	for _, l := range table.Main.Locals {
		c.scope.Define(l)
	}
	for _, s := range prog.MainClass.Statements {
		c.checkStmt(s)
	}

	for _, cd := range prog.Classes {
		ci := table.Classes[cd.Name.Value]
		for _, md := range cd.Methods {
			c.checkMethod(ci, md)
		}
	}

	return c.errs
}

func (c *checker) checkMethod(ci *ClassInfo, md *ast.MethodDecl) {
	mi := ci.Methods[md.Name.Value]
	if mi == nil {
		// Only reached if the method's name has no entry in the class;
		// check the body anyway, without a method-scoped return-type
		// check. A duplicate declaration does have an entry under its
		// name (the first one's), so it is checked against that.
		mi = &MethodInfo{Name: md.Name.Value, ReturnType: types.Undefined}
	}

	c.class = ci
	c.method = mi
	c.scope = NewScope()
	for _, p := range mi.Parameters {
		c.scope.Define(p)
	}
	for _, l := range mi.Locals {
		c.scope.Define(l)
	}

	for _, s := range md.Statements {
		c.checkStmt(s)
	}

	retType := c.checkExpr(md.ReturnExpr)
	if !types.IsAssignable(retType, mi.ReturnType) {
		c.errs = append(c.errs, errors.NewWrongReturnType(md.ReturnExpr.Pos(), md.Name.Value, retType, mi.ReturnType))
	}
}

func (c *checker) checkStmt(s ast.Statement) {
	switch s := s.(type) {
	case *ast.BlockStatement:
		outer := c.scope
		c.scope = NewEnclosedScope(outer)
		for _, inner := range s.Statements {
			c.checkStmt(inner)
		}
		c.scope = outer

	case *ast.IfStatement:
		c.checkCondition(s.Condition, errors.NewWrongIfConditionType)
		c.checkStmt(s.Then)

	case *ast.IfElseStatement:
		c.checkCondition(s.Condition, errors.NewWrongIfConditionType)
		c.checkStmt(s.Then)
		c.checkStmt(s.Else)

	case *ast.WhileStatement:
		c.checkCondition(s.Condition, errors.NewWrongWhileConditionType)
		c.checkStmt(s.Body)

	case *ast.PrintlnStatement:
		t := c.checkExpr(s.Value)
		if !t.IsInt() && !t.IsUndefined() {
			c.errs = append(c.errs, errors.NewUnprintableType(s.Value.Pos(), t))
		}

	case *ast.AssignStatement:
		declared, ok := c.resolveName(s.Name.Value, s.Name.Pos())
		valType := c.checkExpr(s.Value)
		if !ok {
			return
		}
		if !types.IsAssignable(valType, declared) {
			c.errs = append(c.errs, errors.NewInvalidAssignment(s.Value.Pos(), s.Name.Value, valType, declared))
		}

	case *ast.ArrayAssignStatement:
		declared, ok := c.resolveName(s.Name.Value, s.Name.Pos())
		idxType := c.checkExpr(s.Index)
		valType := c.checkExpr(s.Value)
		if !ok {
			return
		}
		if !declared.IsIntArray() && !declared.IsUndefined() {
			c.errs = append(c.errs, errors.NewNotArrayType(s.Name.Pos(), declared))
		}
		if !idxType.IsInt() && !idxType.IsUndefined() {
			c.errs = append(c.errs, errors.NewWrongIndexType(s.Index.Pos(), idxType))
		}
		if !valType.IsInt() && !valType.IsUndefined() {
			c.errs = append(c.errs, errors.NewInvalidAssignment(s.Value.Pos(), s.Name.Value, valType, types.Int))
		}

	default:
		// VarDecl and the class-level declaration nodes also satisfy
		// Statement for Go-embedding convenience, but never appear in a
		// Statements list; nothing to check here.
	}
}

func (c *checker) checkCondition(e ast.Expression, newErr func(lexer.Position, fmt.Stringer) *errors.CompilerError) {
	t := c.checkExpr(e)
	if !t.IsBoolean() && !t.IsUndefined() {
		c.errs = append(c.errs, newErr(e.Pos(), t))
	}
}

// checkExpr infers e's type, records it on e's mutable type slot, and
// returns it so the caller can use it immediately without a second
// GetType() call.
func (c *checker) checkExpr(e ast.Expression) types.Type {
	t := c.inferType(e)
	if typed, ok := e.(ast.Typed); ok {
		typed.SetType(t)
	}
	return t
}

func (c *checker) inferType(e ast.Expression) types.Type {
	switch e := e.(type) {
	case *ast.IntegerLiteral:
		if _, err := strconv.ParseInt(e.Token.Literal, 10, 32); err != nil {
			c.errs = append(c.errs, errors.NewInvalidIntLiteral(e.Pos(), e.Token.Literal))
		}
		return types.Int

	case *ast.BooleanLiteral:
		return types.Boolean

	case *ast.ThisExpression:
		if c.class == nil {
			return types.Undefined
		}
		return c.class.Type

	case *ast.Identifier:
		t, _ := c.resolveName(e.Value, e.Pos())
		return t

	case *ast.BinaryExpression:
		return c.checkBinary(e)

	case *ast.NotExpression:
		operand := c.checkExpr(e.Operand)
		if !operand.IsBoolean() && !operand.IsUndefined() {
			c.errs = append(c.errs, errors.NewNegationExpectedBoolean(e.Pos(), operand))
		}
		return types.Boolean

	case *ast.MethodCallExpression:
		return c.checkMethodCall(e)

	case *ast.ArrayAccessExpression:
		arr := c.checkExpr(e.Array)
		idx := c.checkExpr(e.Index)
		if !arr.IsIntArray() && !arr.IsUndefined() {
			c.errs = append(c.errs, errors.NewNotArrayType(e.Array.Pos(), arr))
		}
		if !idx.IsInt() && !idx.IsUndefined() {
			c.errs = append(c.errs, errors.NewWrongIndexType(e.Index.Pos(), idx))
		}
		return types.Int

	case *ast.ArrayLengthExpression:
		arr := c.checkExpr(e.Array)
		if !arr.IsIntArray() && !arr.IsUndefined() {
			c.errs = append(c.errs, errors.NewLengthOnNonArrayType(e.Array.Pos(), arr))
		}
		return types.Int

	case *ast.NewInstanceExpression:
		name := e.ClassName.Value
		ci, ok := c.table.Lookup(name)
		if !ok {
			c.errs = append(c.errs, errors.NewUndeclaredClass(e.ClassName.Pos(), name))
			return types.Undefined
		}
		return ci.Type

	case *ast.NewIntArrayExpression:
		size := c.checkExpr(e.Size)
		if !size.IsInt() && !size.IsUndefined() {
			c.errs = append(c.errs, errors.NewWrongSizeType(e.Size.Pos(), size))
		}
		return types.IntArray

	default:
		return types.Undefined
	}
}

// checkBinary dispatches on the operator text, which is the only thing
// that distinguishes the otherwise-identical BinaryExpression cases.
func (c *checker) checkBinary(e *ast.BinaryExpression) types.Type {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)

	switch e.Operator {
	case "&&", "||":
		if !left.IsBoolean() && !left.IsUndefined() {
			c.errs = append(c.errs, errors.NewInvalidLeftOperandType(e.Pos(), e.Operator, left, types.Boolean))
		}
		if !right.IsBoolean() && !right.IsUndefined() {
			c.errs = append(c.errs, errors.NewInvalidRightOperandType(e.Pos(), e.Operator, right, types.Boolean))
		}
		return types.Boolean

	case "==", "!=":
		if !left.IsUndefined() && !right.IsUndefined() && !left.Equals(right) {
			c.errs = append(c.errs, errors.NewInvalidComparison(e.Pos(), e.Operator, left, right))
		}
		return types.Boolean

	case "<", ">", "<=", ">=":
		if !left.IsInt() && !left.IsUndefined() {
			c.errs = append(c.errs, errors.NewInvalidComparison(e.Pos(), e.Operator, left, right))
		} else if !right.IsInt() && !right.IsUndefined() {
			c.errs = append(c.errs, errors.NewInvalidComparison(e.Pos(), e.Operator, left, right))
		}
		return types.Boolean

	default: // "+", "-", "*"
		if !left.IsInt() && !left.IsUndefined() {
			c.errs = append(c.errs, errors.NewInvalidLeftOperandType(e.Pos(), e.Operator, left, types.Int))
		}
		if !right.IsInt() && !right.IsUndefined() {
			c.errs = append(c.errs, errors.NewInvalidRightOperandType(e.Pos(), e.Operator, right, types.Int))
		}
		return types.Int
	}
}

func (c *checker) checkMethodCall(e *ast.MethodCallExpression) types.Type {
	recv := c.checkExpr(e.Receiver)
	args := make([]types.Type, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = c.checkExpr(a)
	}

	if recv.IsUndefined() {
		return types.Undefined
	}
	ct, ok := recv.(*types.ClassType)
	if !ok {
		c.errs = append(c.errs, errors.NewMethodCallOnNonClassType(e.Receiver.Pos(), recv))
		return types.Undefined
	}
	ci, ok := c.table.Lookup(ct.Name)
	if !ok {
		// The class itself was already flagged as undeclared where it
		// was named; nothing new to say about calling a method on it.
		return types.Undefined
	}
	mi, ok := ci.Methods[e.Method.Value]
	if !ok {
		c.errs = append(c.errs, errors.NewUndeclaredMethod(e.Method.Pos(), ct.Name, e.Method.Value))
		return types.Undefined
	}

	if len(args) != len(mi.Parameters) {
		c.errs = append(c.errs, errors.NewWrongParameterCount(e.Pos(), mi.Name, len(mi.Parameters), len(args)))
	}
	n := len(args)
	if len(mi.Parameters) < n {
		n = len(mi.Parameters)
	}
	for i := 0; i < n; i++ {
		want := mi.Parameters[i].Type
		if !types.IsAssignable(args[i], want) {
			c.errs = append(c.errs, errors.NewWrongParameterType(e.Arguments[i].Pos(), mi.Name, i, args[i], want))
		}
	}

	return mi.ReturnType
}

// resolveName looks up name first as a local/parameter, then as a
// field of the enclosing class, matching spec's lookup-shadowing rule:
// the innermost binding wins, regardless of what's declared further
// out. Reports UNDECLARED_IDENTIFIER or EXPECTED_VARIABLE_GOT_CLASS
// when name doesn't resolve to a variable at all.
func (c *checker) resolveName(name string, pos lexer.Position) (types.Type, bool) {
	if info, ok := c.scope.Resolve(name); ok {
		return info.Type, true
	}
	if c.class != nil {
		if info, ok := c.class.Fields[name]; ok {
			return info.Type, true
		}
	}
	if _, ok := c.table.Lookup(name); ok {
		c.errs = append(c.errs, errors.NewExpectedVariableGotClass(pos, name))
		return types.Undefined, false
	}
	c.errs = append(c.errs, errors.NewUndeclaredIdentifier(pos, name))
	return types.Undefined, false
}
