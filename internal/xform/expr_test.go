package xform_test

import (
	"strings"
	"testing"

	"github.com/bramblecore/pjstranspile/internal/xform"
)

func TestTransformExpressionIntCast(t *testing.T) {
	got := xform.TransformExpression("(int)(x+1)")
	if !strings.Contains(got, "__int_cast((x+1))") {
		t.Errorf("got %q", got)
	}
}

func TestTransformExpressionPlainCastDropped(t *testing.T) {
	got := xform.TransformExpression("(Foo) bar")
	if got != "bar" {
		t.Errorf("got %q", got)
	}
}

func TestTransformExpressionColorLiteral(t *testing.T) {
	got := xform.TransformExpression("#FF8040")
	if got != "0xFFFF8040" {
		t.Errorf("got %q", got)
	}
}

func TestTransformExpressionSuperAndThisCalls(t *testing.T) {
	if got := xform.TransformExpression("super(1,2)"); got != "$superCstr(1,2)" {
		t.Errorf("super call: got %q", got)
	}
	if got := xform.TransformExpression("super.foo()"); got != "$super.foo()" {
		t.Errorf("super dot: got %q", got)
	}
	if got := xform.TransformExpression("this(1)"); got != "$constr(1)" {
		t.Errorf("this call: got %q", got)
	}
}

func TestTransformExpressionLeadingZeros(t *testing.T) {
	if got := xform.TransformExpression("0010f"); got != "10" {
		t.Errorf("got %q", got)
	}
	if got := xform.TransformExpression("000.43"); got != "0.43" {
		t.Errorf("got %q", got)
	}
	if got := xform.TransformExpression("0010"); got != "0010" {
		t.Errorf("unchanged literal got mutated: %q", got)
	}
}

func TestTransformExpressionMethodRename(t *testing.T) {
	got := xform.TransformExpression(`s.replace("a", "b")`)
	if got != `__replace(s,"a", "b")` {
		t.Errorf("got %q", got)
	}
}

func TestTransformExpressionInstanceof(t *testing.T) {
	got := xform.TransformExpression("x instanceof Foo")
	if got != "__instanceof(x, Foo)" {
		t.Errorf("got %q", got)
	}
}

func TestTransformExpressionPixelsProxy(t *testing.T) {
	if got := xform.TransformExpression("pixels[i] = v"); got != "pixels.setPixel(i, v)" {
		t.Errorf("assign index: got %q", got)
	}
	if got := xform.TransformExpression("pixels[i]"); got != "pixels.getPixel(i)" {
		t.Errorf("read index: got %q", got)
	}
	if got := xform.TransformExpression("pixels.length"); got != "pixels.getLength()" {
		t.Errorf("length: got %q", got)
	}
}
