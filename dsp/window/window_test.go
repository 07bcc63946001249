package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 33)
			if len(w) != 33 {
				t.Fatalf("len=%d, want 33", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}

			// Symmetric windows.
			for i := range w {
				if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
					t.Fatalf("w[%d]=%v not symmetric with w[%d]=%v", i, w[i], len(w)-1-i, w[len(w)-1-i])
				}
			}

			if math.Abs(w[16]-1) > 1e-12 {
				t.Fatalf("centre=%v, want 1", w[16])
			}
		})
	}
}

func TestGenerateMatchesNumpyDefinitions(t *testing.T) {
	const n = 5

	tests := []struct {
		typ  Type
		want []float64
	}{
		{TypeFlat, []float64{1, 1, 1, 1, 1}},
		{TypeHanning, []float64{0, 0.5, 1, 0.5, 0}},
		{TypeHamming, []float64{0.08, 0.54, 1, 0.54, 0.08}},
		{TypeBartlett, []float64{0, 0.5, 1, 0.5, 0}},
		{TypeBlackman, []float64{0, 0.34, 1, 0.34, 0}},
	}

	for _, tc := range tests {
		got := Generate(tc.typ, n)
		for i := range got {
			if math.Abs(got[i]-tc.want[i]) > 1e-12 {
				t.Fatalf("%s[%d]=%v, want %v", tc.typ, i, got[i], tc.want[i])
			}
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHanning, 0); w != nil {
		t.Fatalf("expected nil, got %v", w)
	}
}

func TestNormalizedSumsToOne(t *testing.T) {
	for _, typ := range Types() {
		w, err := Normalized(typ, 11)
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}

		sum := 0.0
		for _, v := range w {
			sum += v
		}

		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("%s: sum=%v, want 1", typ, sum)
		}
	}
}

func TestNormalizedErrors(t *testing.T) {
	if _, err := Normalized(TypeFlat, 0); err == nil {
		t.Fatal("expected error for zero length")
	}

	if _, err := Normalized(TypeHanning, 1); err == nil {
		t.Fatal("expected error for single-sample hanning (all zero)")
	}
}

func TestParse(t *testing.T) {
	for _, typ := range Types() {
		got, err := Parse(" " + typ.String() + " ")
		if err != nil {
			t.Fatalf("Parse(%q): %v", typ.String(), err)
		}

		if got != typ {
			t.Fatalf("Parse(%q)=%v, want %v", typ.String(), got, typ)
		}
	}

	if _, err := Parse("kaiser"); !errors.Is(err, ErrUnknownWindow) {
		t.Fatalf("expected ErrUnknownWindow, got %v", err)
	}
}
