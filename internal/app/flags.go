package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

// Run modes.
const (
	ModeConsole = "console"
	ModeFrames  = "frames"
)

// StdoutPath makes frame mode stream every frame to standard output.
const StdoutPath = "-"

// Config represents the command-line parameters for the application.
type Config struct {
	SimName string
	Sim     life.Config

	Mode   string
	Frames int
	Scale  int
	Format string
	MaxVal int
	Out    string
	TPS    int
	Quiet  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SimName: "life",
		Sim:     life.DefaultConfig(),
		Mode:    ModeFrames,
		Frames:  300,
		Scale:   10,
		Format:  string(render.FormatPGM),
		MaxVal:  255,
		Out:     "out",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.SimName, "sim", c.SimName, "simulation to run")
	fs.IntVar(&c.Sim.Width, "w", c.Sim.Width, "grid width in cells")
	fs.IntVar(&c.Sim.Height, "h", c.Sim.Height, "grid height in cells")
	fs.Int64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "seed for random initialization")
	fs.IntVar(&c.Sim.Workers, "workers", c.Sim.Workers, "goroutines per step (1 = serial)")
	fs.StringVar(&c.Sim.Pattern, "pattern", c.Sim.Pattern, "initial pattern: "+strings.Join(life.Patterns(), ", "))
	fs.Float64Var(&c.Sim.Density, "density", c.Sim.Density, "live cell probability for the random pattern")
	fs.IntVar(&c.Sim.PatternX, "pattern-x", c.Sim.PatternX, "pattern origin column")
	fs.IntVar(&c.Sim.PatternY, "pattern-y", c.Sim.PatternY, "pattern origin row")

	fs.StringVar(&c.Mode, "mode", c.Mode, "run mode: console or frames")
	fs.IntVar(&c.Frames, "frames", c.Frames, "generations to advance; frames+1 frames are emitted")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel block size for bitmap frames (0 disables, otherwise >= 2)")
	fs.StringVar(&c.Format, "format", c.Format, "frame format: pgm, png, bmp or ascii")
	fs.IntVar(&c.MaxVal, "maxval", c.MaxVal, "live cell intensity for pgm frames (1 or 255)")
	fs.StringVar(&c.Out, "out", c.Out, `output directory for frames ("-" streams to stdout)`)
	fs.IntVar(&c.TPS, "tps", c.TPS, "console frames per second (0 = unpaced)")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress progress logging")
}

// Validate reports the first setting the run cannot honour.
func (c *Config) Validate() error {
	if _, ok := core.Sims()[c.SimName]; !ok {
		return fmt.Errorf("unknown sim %q", c.SimName)
	}
	if err := c.Sim.Validate(); err != nil {
		return err
	}
	if c.Mode != ModeConsole && c.Mode != ModeFrames {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}
	if _, err := c.RenderOptions(); err != nil {
		return err
	}
	if c.Mode == ModeFrames && c.Out == "" {
		return errors.New("frames mode needs an output directory")
	}
	return nil
}

// RenderOptions converts the frame settings into encoder options.
func (c *Config) RenderOptions() (render.Options, error) {
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.Options{}, err
	}
	if c.MaxVal != 1 && c.MaxVal != 255 {
		return render.Options{}, fmt.Errorf("maxval must be 1 or 255, got %d", c.MaxVal)
	}
	if c.Scale != 0 && c.Scale < 2 {
		return render.Options{}, fmt.Errorf("scale: %w: %d", core.ErrInvalidScale, c.Scale)
	}
	return render.Options{Format: f, MaxVal: uint8(c.MaxVal), Scale: c.Scale}, nil
}

// SimParams renders the simulation settings as key/value pairs named after
// their flags.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"w":         strconv.Itoa(c.Sim.Width),
		"h":         strconv.Itoa(c.Sim.Height),
		"seed":      strconv.FormatInt(c.Sim.Seed, 10),
		"workers":   strconv.Itoa(c.Sim.Workers),
		"pattern":   c.Sim.Pattern,
		"density":   strconv.FormatFloat(c.Sim.Density, 'f', -1, 64),
		"pattern-x": strconv.Itoa(c.Sim.PatternX),
		"pattern-y": strconv.Itoa(c.Sim.PatternY),
	}
}

// NewSim resolves SimName in the registry and builds it from SimParams.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.SimName]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.SimName)
	}
	return factory(c.SimParams())
}
