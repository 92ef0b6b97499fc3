package state

import (
	"testing"

	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/grass"
	"github.com/Faultbox/meadow/internal/scroll"
)

func TestDefaultConfigBuildsField(t *testing.T) {
	cfg := config.Default()

	field, err := grass.NewField(FieldParams(cfg))
	if err != nil {
		t.Fatalf("NewField() error = %v", err)
	}
	if got, want := field.InstanceCount(), 300*300*3; got != want {
		t.Errorf("InstanceCount() = %d, want %d", got, want)
	}
	if got := field.IndexCount(); got != 60 {
		t.Errorf("IndexCount() = %d, want 60", got)
	}

	u := field.Uniforms()
	if u.GrassParams != [4]float32{5, 300, 0.75, 4.5} {
		t.Errorf("GrassParams = %v", u.GrassParams)
	}
}

func TestControllerOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	field, err := grass.NewField(FieldParams(cfg))
	if err != nil {
		t.Fatal(err)
	}

	opts := ControllerOptions(cfg, field, 640, 480)
	if opts.Region != scroll.TargetViewport {
		t.Errorf("Region = %q, want %q", opts.Region, scroll.TargetViewport)
	}
	if opts.Rules.Threshold != 0.5 || opts.Rules.HomeRoute != "/" {
		t.Errorf("Rules = %+v", opts.Rules)
	}
	if opts.Curve.Rest.FOV != cfg.Camera.Rest.FOV || opts.Curve.Engaged.FOV != cfg.Camera.Engaged.FOV {
		t.Errorf("Curve FOV = %v..%v", opts.Curve.Rest.FOV, opts.Curve.Engaged.FOV)
	}
	if opts.LandmarkRoute != "/about" {
		t.Errorf("LandmarkRoute = %q, want /about", opts.LandmarkRoute)
	}
}

func TestHeightfieldParamsCoverPatch(t *testing.T) {
	cfg := config.Default()
	p := HeightfieldParams(cfg)
	if p.Size != float32(cfg.Grass.PatchSize)*2 {
		t.Errorf("Size = %v, want %v", p.Size, cfg.Grass.PatchSize*2)
	}
	if p.Resolution != heightfieldResolution {
		t.Errorf("Resolution = %d, want %d", p.Resolution, heightfieldResolution)
	}
}
