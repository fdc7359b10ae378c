package math

import (
	"testing"
)

const tolerance float32 = 1e-5

func TestVec3TransformTranslation(t *testing.T) {
	m := NewMat4Translation(NewVec3(10, -5, 2))
	got := NewVec3(1, 2, 3).Transform(m)
	want := NewVec3(11, -3, 5)
	if !got.Compare(want, tolerance) {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}

func TestVec3TransformDirectionIgnoresTranslation(t *testing.T) {
	m := NewMat4Translation(NewVec3(10, -5, 2))
	got := NewVec3(1, 2, 3).TransformDirection(m)
	want := NewVec3(1, 2, 3)
	if !got.Compare(want, tolerance) {
		t.Errorf("TransformDirection() = %v, want %v", got, want)
	}
}

func TestVec3TransformScale(t *testing.T) {
	m := NewMat4Scale(NewVec3(2, 3, 4))
	got := NewVec3(1, 1, 1).Transform(m)
	want := NewVec3(2, 3, 4)
	if !got.Compare(want, tolerance) {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"identity", NewMat4Identity()},
		{"translation", NewMat4Translation(NewVec3(1, 2, 3))},
		{"non-uniform scale", NewMat4Scale(NewVec3(2, 1, 0.5))},
		{"rotation", NewMat4EulerZ(K_PI / 3)},
		{"composed", NewMat4Scale(NewVec3(2, 3, 4)).Mul(NewMat4Translation(NewVec3(-1, 5, 0)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Mul(tt.m.Inverse())
			want := NewMat4Identity()
			for i := 0; i < 16; i++ {
				if kabs(got.Data[i]-want.Data[i]) > 1e-4 {
					t.Fatalf("M*M^-1 differs from identity at %d: %v", i, got.Data)
				}
			}
		})
	}
}

func TestMat4Transposed(t *testing.T) {
	m := NewMat4Translation(NewVec3(1, 2, 3))
	got := NewMat4Transposed(m)
	if got.Data[3] != 1 || got.Data[7] != 2 || got.Data[11] != 3 {
		t.Errorf("NewMat4Transposed moved translation to %v, %v, %v", got.Data[3], got.Data[7], got.Data[11])
	}
	if got.Data[12] != 0 || got.Data[13] != 0 || got.Data[14] != 0 {
		t.Error("NewMat4Transposed left translation in place")
	}
}

func TestVec3Normalize(t *testing.T) {
	got := NewVec3(3, 0, 4).Normalize()
	want := NewVec3(0.6, 0, 0.8)
	if !got.Compare(want, tolerance) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}

	zero := NewVec3Zero().Normalize()
	if !zero.Compare(NewVec3Zero(), tolerance) {
		t.Errorf("Normalize() of zero vector = %v, want zero", zero)
	}
}

func TestTransformGetWorld(t *testing.T) {
	tr := TransformFromPosition(NewVec3(5, 0, 0))
	got := NewVec3(1, 0, 0).Transform(tr.GetWorld())
	want := NewVec3(6, 0, 0)
	if !got.Compare(want, tolerance) {
		t.Errorf("point through GetWorld() = %v, want %v", got, want)
	}
}

func TestTransformParentChain(t *testing.T) {
	parent := TransformFromPosition(NewVec3(0, 10, 0))
	child := TransformFromPosition(NewVec3(1, 0, 0))
	child.Parent = parent
	got := NewVec3Zero().Transform(child.GetWorld())
	want := NewVec3(1, 10, 0)
	if !got.Compare(want, tolerance) {
		t.Errorf("point through parented GetWorld() = %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name            string
		v, low, high, w int
	}{
		{"below", -1, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"above", 42, 0, 10, 10},
		{"at low", 0, 0, 10, 0},
		{"at high", 10, 0, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.low, tt.high); got != tt.w {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.low, tt.high, got, tt.w)
			}
		})
	}
}

func TestRandomInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := RandomInRange(0, 999)
		if got < 0 || got > 999 {
			t.Fatalf("RandomInRange(0, 999) = %d", got)
		}
	}
}
