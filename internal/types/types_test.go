package types

import "testing"

func TestBasicTypeStrings(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Int, "int"},
		{Boolean, "boolean"},
		{IntArray, "int[]"},
		{Undefined, "undefined"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBasicTypePredicates(t *testing.T) {
	if !Int.IsInt() {
		t.Error("Int.IsInt() should be true")
	}
	if !Boolean.IsBoolean() {
		t.Error("Boolean.IsBoolean() should be true")
	}
	if !IntArray.IsIntArray() || !IntArray.IsArray() {
		t.Error("IntArray should report IsIntArray and IsArray")
	}
	if !Undefined.IsUndefined() {
		t.Error("Undefined.IsUndefined() should be true")
	}
	if Int.IsBoolean() || Boolean.IsInt() || IntArray.IsClass() {
		t.Error("cross-kind predicates must be false")
	}
}

func TestClassTypeNameEquality(t *testing.T) {
	a := NewClassType("Foo")
	b := NewClassType("Foo")
	c := NewClassType("Bar")

	if !a.Equals(b) {
		t.Error("two ClassTypes with the same name should be equal")
	}
	if a.Equals(c) {
		t.Error("ClassTypes with different names should not be equal")
	}
	if a.String() != "Foo" {
		t.Errorf("String() = %q, want %q", a.String(), "Foo")
	}
}

func TestAssignability(t *testing.T) {
	foo := NewClassType("Foo")
	bar := NewClassType("Bar")
	foo2 := NewClassType("Foo")

	tests := []struct {
		name   string
		src    Type
		target Type
		want   bool
	}{
		{"int to int", Int, Int, true},
		{"int to boolean", Int, Boolean, false},
		{"undefined to int", Undefined, Int, true},
		{"int to undefined", Int, Undefined, true},
		{"class to same class", foo, foo2, true},
		{"class to different class", foo, bar, false},
		{"intarray to intarray", IntArray, IntArray, true},
		{"undefined to class", Undefined, foo, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAssignable(tt.src, tt.target); got != tt.want {
				t.Errorf("IsAssignable(%v, %v) = %v, want %v", tt.src, tt.target, got, tt.want)
			}
		})
	}
}

func TestUndefinedAcceptsAnything(t *testing.T) {
	// The sentinel's role is to silence cascades: it must be assignable
	// to, and accept, every other type (spec.md §4.4).
	others := []Type{Int, Boolean, IntArray, NewClassType("Whatever")}
	for _, o := range others {
		if !Undefined.IsAssignableTo(o) {
			t.Errorf("Undefined should be assignable to %v", o)
		}
		if !o.IsAssignableTo(Undefined) {
			t.Errorf("%v should be assignable to Undefined", o)
		}
	}
}
