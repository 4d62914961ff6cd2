package raster2d

import "testing"

func TestPathAppendBeforeMovePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic appending LineTo before MoveTo")
		}
	}()
	p := NewPath()
	p.LineTo(1, 1)
}

func TestPathCloseBeforeMovePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic closing a path never started")
		}
	}()
	p := NewPath()
	p.Close()
}

func TestPathCloseAddsLineBackToMove(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.Close()

	if got := p.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := p.Cmd(2); got != CmdLine {
		t.Fatalf("Close's command = %v, want CmdLine", got)
	}
	if got := p.PointAt(2, 0); got != Pt(1, 2) {
		t.Fatalf("Close's endpoint = %v, want (1,2)", got)
	}
}

func TestPathReset(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.Reset()

	if got := p.Len(); got != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic: Reset should clear the started flag")
		}
	}()
	p.LineTo(2, 2)
}

func TestPathCmdNumPoints(t *testing.T) {
	cases := []struct {
		cmd  PathCmd
		want int
	}{
		{CmdMove, 1}, {CmdLine, 1}, {CmdQuad, 2}, {CmdCubic, 3},
	}
	for _, c := range cases {
		if got := c.cmd.NumPoints(); got != c.want {
			t.Errorf("%v.NumPoints() = %d, want %d", c.cmd, got, c.want)
		}
	}
}

func TestPathAssignFromInPlaceOffset(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)

	p.AssignFrom(Offset(p, 5, 5))

	if got := p.PointAt(0, 0); got != Pt(5, 5) {
		t.Errorf("MoveTo point after in-place offset = %v, want (5,5)", got)
	}
	if got := p.PointAt(1, 0); got != Pt(15, 5) {
		t.Errorf("LineTo point after in-place offset = %v, want (15,5)", got)
	}
}

func TestPathAssignFromMaterializesNonInPlaceSource(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(10, 0)

	p := NewPath()
	p.MoveTo(99, 99)
	p.AssignFrom(Retro(a))

	if got := p.Len(); got != a.Len() {
		t.Fatalf("Len() after AssignFrom(Retro(a)) = %d, want %d", got, a.Len())
	}
	if got := p.PointAt(0, 0); got != Pt(10, 0) {
		t.Errorf("first point = %v, want (10,0) (the reversed start)", got)
	}
}

func TestFlattenStraightPathVisitsEveryVertex(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	var moves, lines []Point
	Flatten(p, func(pt Point) { moves = append(moves, pt) }, func(pt Point) { lines = append(lines, pt) })

	if len(moves) != 1 || moves[0] != Pt(0, 0) {
		t.Errorf("moves = %v, want [(0,0)]", moves)
	}
	if len(lines) != 2 || lines[0] != Pt(10, 0) || lines[1] != Pt(10, 10) {
		t.Errorf("lines = %v, want [(10,0) (10,10)]", lines)
	}
}

func TestFlattenQuadEndpointIsExact(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadTo(5, 10, 10, 0)

	var lines []Point
	Flatten(p, func(Point) {}, func(pt Point) { lines = append(lines, pt) })

	if len(lines) == 0 {
		t.Fatal("Flatten produced no line segments for a Quad")
	}
	last := lines[len(lines)-1]
	if last != Pt(10, 0) {
		t.Errorf("last flattened vertex = %v, want the curve's exact endpoint (10,0)", last)
	}
}

func TestFlattenCubicEndpointIsExact(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)

	var lines []Point
	Flatten(p, func(Point) {}, func(pt Point) { lines = append(lines, pt) })

	if len(lines) == 0 {
		t.Fatal("Flatten produced no line segments for a Cubic")
	}
	last := lines[len(lines)-1]
	if last != Pt(10, 0) {
		t.Errorf("last flattened vertex = %v, want the curve's exact endpoint (10,0)", last)
	}
}
