// Package semantic builds the symbol table and checks types for a
// parsed program: the two passes between parsing and code generation.
package semantic

import (
	"github.com/tychobrailleur/mjc/internal/lexer"
	"github.com/tychobrailleur/mjc/internal/types"
)

// VariableKind distinguishes how a name entered scope, for diagnostics
// and for the "may a local shadow a field/parameter" lookup rule.
type VariableKind int

const (
	FieldVar VariableKind = iota
	ParameterVar
	LocalVar
)

// VariableInfo describes one declared name: a field, a parameter, or a
// local variable.
type VariableInfo struct {
	Name string
	Type types.Type
	Kind VariableKind
	Pos  lexer.Position
}

// MethodInfo describes one declared method. Parameters and Locals are
// both ordinary VariableInfo, kept in declaration order for
// argument-count/type checks and for symbol listing.
type MethodInfo struct {
	Name       string
	ReturnType types.Type
	Parameters []*VariableInfo
	Locals     []*VariableInfo
	Pos        lexer.Position
}

// ParameterTypes returns the parameter types in order, for arity and
// assignability checks against a call site.
func (m *MethodInfo) ParameterTypes() []types.Type {
	out := make([]types.Type, len(m.Parameters))
	for i, p := range m.Parameters {
		out[i] = p.Type
	}
	return out
}

// ClassInfo describes one declared class: its own type, its fields,
// and its methods. MiniJava has no inheritance, so unlike a typical
// compiler's ClassInfo there is no superclass link or inherited-member
// lookup — Fields/Methods are exactly what the class itself declares.
type ClassInfo struct {
	Name    string
	Type    *types.ClassType
	Fields  map[string]*VariableInfo
	Methods map[string]*MethodInfo
	Pos     lexer.Position
}

// ProgramTable is the top-level symbol table: every declared class,
// keyed by name (including the main class, under its own name, with no
// fields or methods of its own).
type ProgramTable struct {
	Classes map[string]*ClassInfo
	// Main holds the main class's locals, so the checker can seed a
	// Scope for its statement list the same way it does for an
	// ordinary method body.
	Main *MethodInfo
}

// NewProgramTable returns an empty table.
func NewProgramTable() *ProgramTable {
	return &ProgramTable{Classes: make(map[string]*ClassInfo)}
}

// Lookup returns the ClassInfo for name, or (nil, false) if no such
// class was declared.
func (pt *ProgramTable) Lookup(name string) (*ClassInfo, bool) {
	ci, ok := pt.Classes[name]
	return ci, ok
}

// Scope is one block's variable bindings during local-variable
// resolution, chained to its enclosing scope. A method body's
// top-level scope is seeded with its parameters; a nested block's
// scope is empty at entry and discarded at exit. Unlike ProgramTable,
// which is keyed once and read many times, a Scope is built and torn
// down as the walk enters and leaves each block.
type Scope struct {
	vars  map[string]*VariableInfo
	outer *Scope
}

// NewScope returns a scope with no enclosing scope (a method's
// top-level block).
func NewScope() *Scope {
	return &Scope{vars: make(map[string]*VariableInfo)}
}

// NewEnclosedScope returns a scope nested inside outer, for a `{ }`
// block.
func NewEnclosedScope(outer *Scope) *Scope {
	s := NewScope()
	s.outer = outer
	return s
}

// Define binds name in this scope, overwriting any existing binding of
// the same name. DUPLICATE_LOCAL is reported by the symbol-table
// builder, not here.
func (s *Scope) Define(info *VariableInfo) {
	s.vars[info.Name] = info
}

// IsDeclaredInCurrentScope reports whether name is bound in this exact
// scope, not an enclosing one — the rule spec.md §9 settles on:
// shadowing a field or parameter from a nested block is allowed, but
// redeclaring within the same block is DUPLICATE_LOCAL.
func (s *Scope) IsDeclaredInCurrentScope(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Resolve looks up name in this scope and, failing that, every
// enclosing scope in turn.
func (s *Scope) Resolve(name string) (*VariableInfo, bool) {
	if info, ok := s.vars[name]; ok {
		return info, true
	}
	if s.outer != nil {
		return s.outer.Resolve(name)
	}
	return nil, false
}
