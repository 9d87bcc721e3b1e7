package semantic

import (
	"github.com/tychobrailleur/mjc/internal/ast"
	"github.com/tychobrailleur/mjc/internal/errors"
	"github.com/tychobrailleur/mjc/internal/lexer"
	"github.com/tychobrailleur/mjc/internal/types"
)

// BuildSymbols runs the two declaration passes over prog and returns the
// resulting ProgramTable plus any DUPLICATE_* errors found along the
// way. Errors never stop the walk: every class, field, method,
// parameter, and local except a duplicate still gets registered (the
// first declaration of a name is the one kept), so the type checker has
// as complete a table as possible to work from, even on a program with
// naming mistakes.
//
// Pass A registers every class, field, and method signature. A field or
// parameter typed as some other class is recorded as-is without
// checking that the named class actually exists — that check belongs
// to the type checker (spec's "class type references not validated
// until type checker"), since Pass A does not require a referenced
// class to be declared before the class that references it.
//
// Pass B registers each method's (and the main class's) locals against
// its own parameter list.
func BuildSymbols(prog *ast.Program) (*ProgramTable, []*errors.CompilerError) {
	table := NewProgramTable()
	var errs []*errors.CompilerError

	declareClass(table, &errs, prog.MainClass.Name.Value, prog.MainClass.Pos())
	for _, cd := range prog.Classes {
		declareClass(table, &errs, cd.Name.Value, cd.Pos())
	}

	for _, cd := range prog.Classes {
		ci := table.Classes[cd.Name.Value]
		buildFields(ci, cd, &errs)
		buildMethods(ci, cd, &errs)
	}

	table.Main = buildMainLocals(prog.MainClass, &errs)

	return table, errs
}

// declareClass registers name in table, reporting DUPLICATE_CLASS if
// another class (including the main class) already claimed it. On
// collision the first declaration wins the table entry; the colliding
// one is simply not added, so method/field lookups downstream still
// resolve against a single, consistent ClassInfo.
func declareClass(table *ProgramTable, errs *[]*errors.CompilerError, name string, pos lexer.Position) {
	if _, exists := table.Classes[name]; exists {
		*errs = append(*errs, errors.NewDuplicateClass(pos, name))
		return
	}
	table.Classes[name] = &ClassInfo{
		Name:    name,
		Type:    types.NewClassType(name),
		Fields:  make(map[string]*VariableInfo),
		Methods: make(map[string]*MethodInfo),
		Pos:     pos,
	}
}

func buildFields(ci *ClassInfo, cd *ast.ClassDecl, errs *[]*errors.CompilerError) {
	for _, fd := range cd.Fields {
		name := fd.Name.Value
		if _, exists := ci.Fields[name]; exists {
			*errs = append(*errs, errors.NewDuplicateField(fd.Pos(), ci.Name, name))
			continue
		}
		ci.Fields[name] = &VariableInfo{
			Name: name,
			Type: resolveTypeAnnotation(fd.Type),
			Kind: FieldVar,
			Pos:  fd.Pos(),
		}
	}
}

func buildMethods(ci *ClassInfo, cd *ast.ClassDecl, errs *[]*errors.CompilerError) {
	for _, md := range cd.Methods {
		name := md.Name.Value
		if _, exists := ci.Methods[name]; exists {
			*errs = append(*errs, errors.NewDuplicateMethod(md.Pos(), ci.Name, name))
			continue
		}
		mi := &MethodInfo{
			Name:       name,
			ReturnType: resolveTypeAnnotation(md.ReturnType),
			Pos:        md.Pos(),
		}
		seenParams := make(map[string]bool)
		for _, f := range md.Formals {
			pname := f.Name.Value
			if seenParams[pname] {
				*errs = append(*errs, errors.NewDuplicateParameter(f.Name.Pos(), name, pname))
				continue
			}
			seenParams[pname] = true
			mi.Parameters = append(mi.Parameters, &VariableInfo{
				Name: pname,
				Type: resolveTypeAnnotation(f.Type),
				Kind: ParameterVar,
				Pos:  f.Name.Pos(),
			})
		}
		buildMethodLocals(mi, md, seenParams, errs)
		ci.Methods[name] = mi
	}
}

// buildMethodLocals registers md's locals on mi, reporting
// DUPLICATE_LOCAL when a local repeats an earlier local or one of the
// method's own parameters. A local is never checked against field
// names: a local is allowed to shadow a field (spec.md §9's lookup-
// shadowing resolution of the parameter/field-shadowing open
// question).
func buildMethodLocals(mi *MethodInfo, md *ast.MethodDecl, seenParams map[string]bool, errs *[]*errors.CompilerError) {
	seenLocals := make(map[string]bool)
	for _, l := range md.Locals {
		name := l.Name.Value
		if seenLocals[name] || seenParams[name] {
			*errs = append(*errs, errors.NewDuplicateLocal(l.Name.Pos(), name))
			continue
		}
		seenLocals[name] = true
		mi.Locals = append(mi.Locals, &VariableInfo{
			Name: name,
			Type: resolveTypeAnnotation(l.Type),
			Kind: LocalVar,
			Pos:  l.Name.Pos(),
		})
	}
}

// buildMainLocals registers the main class's locals. The main method
// takes no declared parameters other than the built-in args array,
// which is not itself a MiniJava-typed variable a local could collide
// with, so there is no parameter set to check against.
func buildMainLocals(mc *ast.MainClassDecl, errs *[]*errors.CompilerError) *MethodInfo {
	mi := &MethodInfo{Name: mc.MethodName.Literal, ReturnType: nil, Pos: mc.Pos()}
	seenLocals := make(map[string]bool)
	for _, l := range mc.Locals {
		name := l.Name.Value
		if seenLocals[name] {
			*errs = append(*errs, errors.NewDuplicateLocal(l.Name.Pos(), name))
			continue
		}
		seenLocals[name] = true
		mi.Locals = append(mi.Locals, &VariableInfo{
			Name: name,
			Type: resolveTypeAnnotation(l.Type),
			Kind: LocalVar,
			Pos:  l.Name.Pos(),
		})
	}
	return mi
}

// resolveTypeAnnotation maps a syntactic TypeAnnotation onto the
// semantic Type it denotes. A class-name annotation always resolves to
// *some* ClassType value, even if no class by that name is ever
// declared — the type checker is responsible for flagging that with
// UNDECLARED_CLASS.
func resolveTypeAnnotation(ta *ast.TypeAnnotation) types.Type {
	switch ta.Kind {
	case ast.IntType:
		return types.Int
	case ast.BooleanType:
		return types.Boolean
	case ast.IntArrayType:
		return types.IntArray
	case ast.ClassNameType:
		return types.NewClassType(ta.ClassName)
	default:
		return types.Undefined
	}
}
