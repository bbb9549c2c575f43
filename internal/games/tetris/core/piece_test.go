package core

import "testing"

func TestCatalogShapes(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			rotations := RotationsOf(typ)
			want := 4
			if typ == TypeO {
				want = 1
			}
			if len(rotations) != want {
				t.Fatalf("rotation count = %d, want %d", len(rotations), want)
			}
			color := ColorOf(typ)
			if color < 1 || color > 7 {
				t.Fatalf("color index %d out of range", color)
			}
			for r, m := range rotations {
				if len(m.Cells()) != 4 {
					t.Errorf("rotation %d has %d cells, want 4", r, len(m.Cells()))
				}
				for _, row := range m {
					if len(row) != m.Size() {
						t.Errorf("rotation %d is not square", r)
					}
					for _, v := range row {
						if v != 0 && v != color {
							t.Errorf("rotation %d holds %d, want %d", r, v, color)
						}
					}
				}
			}
		})
	}
}

func TestCatalogColors(t *testing.T) {
	want := map[Type]int{TypeT: 1, TypeO: 2, TypeL: 3, TypeJ: 4, TypeI: 5, TypeS: 6, TypeZ: 7}
	for typ, color := range want {
		if got := ColorOf(typ); got != color {
			t.Errorf("ColorOf(%v) = %d, want %d", typ, got, color)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"I", TypeI, false},
		{"o", TypeO, false},
		{" z ", TypeZ, false},
		{"", 0, true},
		{"X", 0, true},
		{"TO", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseType(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseType(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestActivePieceTransformsAreCopies(t *testing.T) {
	p := NewActivePiece(TypeT, Point{X: 3, Y: 0})

	moved := p.Moved(1, 2)
	rotated := p.Rotated(-1)

	if p.Pos != (Point{X: 3, Y: 0}) || p.Rotation != 0 {
		t.Fatalf("original piece mutated: %+v", p)
	}
	if moved.Pos != (Point{X: 4, Y: 2}) {
		t.Errorf("Moved pos = %+v", moved.Pos)
	}
	if rotated.Rotation != 1 || rotated.Pos.X != 2 {
		t.Errorf("Rotated = rotation %d x %d, want 1 and 2", rotated.Rotation, rotated.Pos.X)
	}
	if !rotated.Matrix.Equal(RotationsOf(TypeT)[1]) {
		t.Error("Rotated matrix should be rotation 1")
	}
}

func TestBlocksAreAbsolute(t *testing.T) {
	p := NewActivePiece(TypeO, Point{X: 4, Y: 18})
	want := []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}}
	got := p.Blocks()
	if len(got) != len(want) {
		t.Fatalf("Blocks() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Blocks()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
