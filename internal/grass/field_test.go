package grass

import (
	"errors"
	"testing"
)

func defaultParams() Params {
	return Params{
		Segments:    5,
		PatchSize:   300,
		Density:     3,
		BladeWidth:  0.75,
		BladeHeight: 4.5,
	}
}

func TestNewField(t *testing.T) {
	f, err := NewField(defaultParams())
	if err != nil {
		t.Fatalf("NewField() error: %v", err)
	}

	if f.InstanceCount() != 300*300*3 {
		t.Errorf("InstanceCount() = %d, want %d", f.InstanceCount(), 300*300*3)
	}
	if f.IndexCount() != 60 {
		t.Errorf("IndexCount() = %d, want 60", f.IndexCount())
	}
	if f.VertexCount() != 24 {
		t.Errorf("VertexCount() = %d, want 24", f.VertexCount())
	}
	if f.Bounds().Radius < 1+300*2 {
		t.Errorf("Bounds().Radius = %v, want >= %v", f.Bounds().Radius, 1+300*2)
	}
}

func TestNewFieldInstanceOverride(t *testing.T) {
	p := defaultParams()
	p.InstanceCount = 1000
	f, err := NewField(p)
	if err != nil {
		t.Fatal(err)
	}
	if f.InstanceCount() != 1000 {
		t.Errorf("InstanceCount() = %d, want 1000", f.InstanceCount())
	}
}

func TestNewFieldInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"zero segments", func(p *Params) { p.Segments = 0 }, ErrInvalidSegments},
		{"zero patch", func(p *Params) { p.PatchSize = 0 }, ErrInvalidParams},
		{"zero density", func(p *Params) { p.Density = 0 }, ErrInvalidParams},
		{"negative count", func(p *Params) { p.InstanceCount = -1 }, ErrInvalidParams},
		{"zero width", func(p *Params) { p.BladeWidth = 0 }, ErrInvalidParams},
		{"negative height", func(p *Params) { p.BladeHeight = -1 }, ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.mutate(&p)
			f, err := NewField(p)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewField() error = %v, want %v", err, tt.want)
			}
			if f != nil {
				t.Error("NewField() returned a field on error")
			}
		})
	}
}

func TestFieldIndicesIsCopy(t *testing.T) {
	f, err := NewField(defaultParams())
	if err != nil {
		t.Fatal(err)
	}
	idx := f.Indices()
	idx[0] = 12345
	if f.Indices()[0] == 12345 {
		t.Error("Indices() exposed internal buffer")
	}
}

func TestFieldUniforms(t *testing.T) {
	f, err := NewField(defaultParams())
	if err != nil {
		t.Fatal(err)
	}

	u := f.Uniforms()
	want := [4]float32{5, 300, 0.75, 4.5}
	if u.GrassParams != want {
		t.Errorf("GrassParams = %v, want %v", u.GrassParams, want)
	}
	if err := f.CheckUniforms(u); err != nil {
		t.Errorf("CheckUniforms() on seeded uniforms: %v", err)
	}

	u.SetResolution(1280, 720)
	if u.Resolution != [2]float32{1280, 720} {
		t.Errorf("Resolution = %v", u.Resolution)
	}
	if err := f.CheckUniforms(u); err != nil {
		t.Errorf("resolution must not affect consistency: %v", err)
	}

	bad := u
	bad.GrassParams[0] = 6
	if err := f.CheckUniforms(bad); !errors.Is(err, ErrUniformMismatch) {
		t.Errorf("CheckUniforms() segments mismatch error = %v", err)
	}

	bad = u
	bad.GrassParams[1] = 200
	if err := f.CheckUniforms(bad); !errors.Is(err, ErrUniformMismatch) {
		t.Errorf("CheckUniforms() patch mismatch error = %v", err)
	}
}

func TestPlacementWithinBounds(t *testing.T) {
	f, err := NewField(Params{Segments: 3, PatchSize: 50, Density: 2, BladeWidth: 1, BladeHeight: 2})
	if err != nil {
		t.Fatal(err)
	}
	b := f.Bounds()
	for id := 0; id < f.InstanceCount(); id++ {
		blade := Placement(uint32(id), 50)
		if !b.Contains(blade.X, blade.Z) {
			t.Fatalf("blade %d at (%v, %v) outside bounds radius %v", id, blade.X, blade.Z, b.Radius)
		}
		if blade.X < -50 || blade.X > 50 || blade.Z < -50 || blade.Z > 50 {
			t.Fatalf("blade %d at (%v, %v) outside patch", id, blade.X, blade.Z)
		}
		if blade.HeightScale < 0.75 || blade.HeightScale >= 1.25 {
			t.Fatalf("blade %d height scale %v", id, blade.HeightScale)
		}
	}
}

func TestPlacementDeterministic(t *testing.T) {
	for id := uint32(0); id < 100; id++ {
		if Placement(id, 300) != Placement(id, 300) {
			t.Fatalf("Placement(%d) not deterministic", id)
		}
	}
	if Placement(1, 300) == Placement(2, 300) {
		t.Error("neighbouring ids should not share a placement")
	}
}
