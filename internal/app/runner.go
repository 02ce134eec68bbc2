package app

import (
	"bytes"
	"fmt"
	"io"
	"log"

	icore "lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/pkg/core"
)

// Runner drives a simulation for a fixed number of generations and emits a
// frame before the first step and after every step.
type Runner struct {
	sim    core.Sim
	cfg    *Config
	opts   render.Options
	stdout io.Writer
	log    *log.Logger
	pacer  *icore.FixedStep

	buf bytes.Buffer
}

// NewRunner validates cfg and prepares a Runner for sim. Console output and
// streamed frames go to stdout; progress goes to logger.
func NewRunner(sim core.Sim, cfg *Config, stdout io.Writer, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{
		sim:    sim,
		cfg:    cfg,
		opts:   opts,
		stdout: stdout,
		log:    logger,
		pacer:  icore.NewFixedStep(cfg.TPS),
	}, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (r *Runner) Reset(seed int64) {
	r.sim.Reset(seed)
}

// Frame encodes the current generation into w.
func (r *Runner) Frame(w io.Writer) error {
	return render.Encode(w, r.sim, r.opts)
}

// Step advances the simulation by exactly one generation.
func (r *Runner) Step() {
	r.sim.Step()
}

// Run emits cfg.Frames+1 frames: generation 0, then one per step.
func (r *Runner) Run() error {
	if ps, ok := r.sim.(core.ParameterSource); ok {
		r.log.Printf("%s: %s", r.sim.Name(), ps.Parameters())
	}
	if r.cfg.Mode == ModeConsole {
		return r.runConsole()
	}
	return r.runFrames()
}

func (r *Runner) runConsole() error {
	for i := 0; i <= r.cfg.Frames; i++ {
		r.pacer.Wait()
		r.buf.Reset()
		fmt.Fprintf(&r.buf, "Step %d\n", i)
		if err := render.WriteASCII(&r.buf, r.sim); err != nil {
			return err
		}
		if _, err := r.stdout.Write(r.buf.Bytes()); err != nil {
			return fmt.Errorf("console step %d: %w: %w", i, core.ErrSinkWriteFailed, err)
		}
		if i < r.cfg.Frames {
			r.Step()
		}
	}
	return nil
}

func (r *Runner) runFrames() (err error) {
	sink, err := r.openSink()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for i := 0; i <= r.cfg.Frames; i++ {
		r.buf.Reset()
		if err := r.Frame(&r.buf); err != nil {
			return fmt.Errorf("render frame %d: %w", i, err)
		}
		if err := sink.WriteFrame(i, r.buf.Bytes()); err != nil {
			return err
		}
		if i < r.cfg.Frames {
			r.Step()
		}
	}
	if pc, ok := r.sim.(core.PopulationCounter); ok {
		r.log.Printf("wrote %d frames, final population %d", r.cfg.Frames+1, pc.Population())
	} else {
		r.log.Printf("wrote %d frames", r.cfg.Frames+1)
	}
	return nil
}

func (r *Runner) openSink() (FrameSink, error) {
	if r.cfg.Out == StdoutPath {
		return NewStreamSink(r.stdout), nil
	}
	return NewDirSink(r.cfg.Out, r.opts.Format.Ext(), r.log)
}
