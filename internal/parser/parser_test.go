package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tychobrailleur/mjc/internal/ast"
)

const factorialSrc = `
class Factorial {
    public static void main(String[] a) {
        System.out.println(new Fac().ComputeFac(10));
    }
}

class Fac {
    public int ComputeFac(int num) {
        int num_aux;
        if (num < 1)
            num_aux = 1;
        else
            num_aux = num * (this.ComputeFac(num - 1));
        return num_aux;
    }
}
`

func TestParseFactorial(t *testing.T) {
	prog, errs := Parse(factorialSrc)
	assert.Empty(t, errs)
	if !assert.NotNil(t, prog) {
		return
	}

	assert.Equal(t, "Factorial", prog.MainClass.Name.Value)
	if assert.Len(t, prog.Classes, 1) {
		fac := prog.Classes[0]
		assert.Equal(t, "Fac", fac.Name.Value)
		assert.Len(t, fac.Methods, 1)
		assert.Equal(t, "ComputeFac", fac.Methods[0].Name.Value)
	}
}

func TestParseMainClassNoLocals(t *testing.T) {
	prog, errs := Parse(`
class Hello {
    public static void main(String[] a) {
        System.out.println(1);
    }
}
`)
	assert.Empty(t, errs)
	if assert.NotNil(t, prog) {
		assert.Empty(t, prog.MainClass.Locals)
		assert.Len(t, prog.MainClass.Statements, 1)
	}
}

func TestParseFieldAndMethod(t *testing.T) {
	prog, errs := Parse(`
class M { public static void main(String[] a) { } }
class Counter {
    int n;
    public int get() { return n; }
}
`)
	assert.Empty(t, errs)
	if !assert.NotNil(t, prog) {
		return
	}
	c := prog.Classes[0]
	if assert.Len(t, c.Fields, 1) {
		assert.Equal(t, "n", c.Fields[0].Name.Value)
		assert.True(t, c.Fields[0].Type.Kind == ast.IntType)
	}
	if assert.Len(t, c.Methods, 1) {
		ident, ok := c.Methods[0].ReturnExpr.(*ast.Identifier)
		if assert.True(t, ok) {
			assert.Equal(t, "n", ident.Value)
		}
	}
}

// Dangling else: the else must bind to the innermost if, regardless of
// indentation, when one is present...
func TestParseDanglingElseBindsInnermost(t *testing.T) {
	prog, errs := Parse(`
class M {
    public static void main(String[] a) {
        if (true)
            if (false)
                System.out.println(1);
            else
                System.out.println(2);
    }
}
`)
	assert.Empty(t, errs)
	if !assert.NotNil(t, prog) {
		return
	}
	outer, ok := prog.MainClass.Statements[0].(*ast.IfStatement)
	if !assert.True(t, ok, "outer if must have no else of its own") {
		return
	}
	_, ok = outer.Then.(*ast.IfElseStatement)
	assert.True(t, ok, "else must bind to the inner if")
}

// ...and when no else appears anywhere, the outer if must still parse
// as a bare IfStatement rather than be rejected.
func TestParseNestedIfNoElseAnywhere(t *testing.T) {
	prog, errs := Parse(`
class M {
    public static void main(String[] a) {
        if (true)
            if (false)
                System.out.println(1);
    }
}
`)
	assert.Empty(t, errs)
	if !assert.NotNil(t, prog) {
		return
	}
	outer, ok := prog.MainClass.Statements[0].(*ast.IfStatement)
	if !assert.True(t, ok) {
		return
	}
	_, ok = outer.Then.(*ast.IfStatement)
	assert.True(t, ok)
}

func TestParseWhileAndArrayAssign(t *testing.T) {
	prog, errs := Parse(`
class M {
    public static void main(String[] a) {
        int[] xs;
        int i;
        i = 0;
        while (i < 10) {
            xs[i] = i;
            i = i + 1;
        }
    }
}
`)
	assert.Empty(t, errs)
	if !assert.NotNil(t, prog) {
		return
	}
	ws, ok := prog.MainClass.Statements[1].(*ast.WhileStatement)
	if !assert.True(t, ok) {
		return
	}
	block, ok := ws.Body.(*ast.BlockStatement)
	if assert.True(t, ok) {
		_, ok = block.Statements[0].(*ast.ArrayAssignStatement)
		assert.True(t, ok)
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	prog, errs := Parse(`
class M {
    public static void main(String[] a) {
        System.out.println(1 + 2 * 3);
    }
}
`)
	assert.Empty(t, errs)
	if !assert.NotNil(t, prog) {
		return
	}
	println := prog.MainClass.Statements[0].(*ast.PrintlnStatement)
	assert.Equal(t, "(1 + (2 * 3))", println.Value.String())
}

func TestParseLengthOnNewIntArray(t *testing.T) {
	prog, errs := Parse(`
class M {
    public static void main(String[] a) {
        System.out.println(new int[10].length);
    }
}
`)
	assert.Empty(t, errs)
	if !assert.NotNil(t, prog) {
		return
	}
	println := prog.MainClass.Statements[0].(*ast.PrintlnStatement)
	_, ok := println.Value.(*ast.ArrayLengthExpression)
	assert.True(t, ok)
}

// new int[e] can never itself be indexed again; MiniJava has no
// nested array types, so `new int[e][e]` is a syntax error, not a
// later type error.
func TestParseNewIntArrayRejectsDoubleIndex(t *testing.T) {
	prog, errs := Parse(`
class M {
    public static void main(String[] a) {
        System.out.println(new int[10][5]);
    }
}
`)
	assert.Nil(t, prog)
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0].Message, "cannot index the result of new int")
	}
}

func TestParseStopsAtFirstSyntaxError(t *testing.T) {
	prog, errs := Parse(`
class M {
    public static void main(String[] a) {
        System.out.println(;
    }
}
`)
	assert.Nil(t, prog)
	assert.Len(t, errs, 1)
}

func TestParseMethodCallWithArguments(t *testing.T) {
	prog, errs := Parse(`
class M { public static void main(String[] a) { } }
class Adder {
    public int add(int x, int y) {
        return x + y;
    }
    public int callIt() {
        return this.add(1, 2);
    }
}
`)
	assert.Empty(t, errs)
	if !assert.NotNil(t, prog) {
		return
	}
	callIt := prog.Classes[0].Methods[1]
	mc, ok := callIt.ReturnExpr.(*ast.MethodCallExpression)
	if assert.True(t, ok) {
		assert.Equal(t, "add", mc.Method.Value)
		assert.Len(t, mc.Arguments, 2)
	}
}
