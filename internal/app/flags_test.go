package app

import (
	"errors"
	"flag"
	"io"
	"testing"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Sim.Width != 50 || cfg.Sim.Height != 50 || cfg.Scale != 10 || cfg.Frames != 300 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	args := []string{"-w", "32", "-h", "16", "-seed", "5", "-workers", "4", "-pattern", "glider",
		"-mode", "console", "-frames", "12", "-scale", "0", "-format", "png", "-maxval", "1", "-tps", "30"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim.Width != 32 || cfg.Sim.Height != 16 || cfg.Sim.Seed != 5 || cfg.Sim.Workers != 4 {
		t.Fatalf("sim config = %+v", cfg.Sim)
	}
	if cfg.Sim.Pattern != "glider" || cfg.Mode != ModeConsole || cfg.Frames != 12 || cfg.TPS != 30 {
		t.Fatalf("run config = %+v", cfg)
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatalf("RenderOptions: %v", err)
	}
	if opts != (render.Options{Format: render.FormatPNG, MaxVal: 1, Scale: 0}) {
		t.Fatalf("RenderOptions = %+v", opts)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"mode":    func(c *Config) { c.Mode = "gui" },
		"frames":  func(c *Config) { c.Frames = -1 },
		"format":  func(c *Config) { c.Format = "gif" },
		"maxval":  func(c *Config) { c.MaxVal = 128 },
		"out":     func(c *Config) { c.Out = "" },
		"pattern": func(c *Config) { c.Sim.Pattern = "gun" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}

	cfg := NewConfig()
	cfg.Scale = -2
	if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidScale) {
		t.Fatalf("scale -2 err = %v, want ErrInvalidScale", err)
	}
	cfg = NewConfig()
	cfg.Sim.Height = 0
	if err := cfg.Validate(); !errors.Is(err, core.ErrAllocationFailed) {
		t.Fatalf("height 0 err = %v, want ErrAllocationFailed", err)
	}
}

func TestNewSimResolvesRegistry(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim.Width = 9
	cfg.Sim.Height = 4
	cfg.Sim.Pattern = "block"
	cfg.Sim.PatternX = 2
	cfg.Sim.PatternY = 1

	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Name() != "life" {
		t.Fatalf("Name() = %q, want life", sim.Name())
	}
	if s := sim.Size(); s.W != 9 || s.H != 4 {
		t.Fatalf("Size() = %+v, want 9x4", s)
	}
	sim.Reset(cfg.Sim.Seed)
	if !sim.Alive(2, 1) || !sim.Alive(3, 2) || sim.Alive(0, 0) {
		t.Fatal("block pattern not seeded at the configured origin")
	}

	ps := sim.(core.ParameterSource).Parameters()
	for key, want := range cfg.SimParams() {
		if got, ok := ps.Lookup(key); !ok || got != want {
			t.Fatalf("parameter %s = %q, want %q", key, got, want)
		}
	}

	cfg.SimName = "briansbrain"
	if _, err := cfg.NewSim(); err == nil {
		t.Fatal("NewSim should fail for an unregistered sim")
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate should reject an unregistered sim")
	}
}
