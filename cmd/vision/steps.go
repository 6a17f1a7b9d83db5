package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gopixel/vision"
	"github.com/gopixel/vision/internal/imageio"
)

// Step grammar errors.
var (
	ErrUnknownStep = errors.New("unknown step")
	ErrBadArgument = errors.New("bad step argument")
)

// step is one parsed transform request from the command line.
type step struct {
	name       string
	size       int
	value      float64
	thresholds []float64
}

// parseSteps validates the ordered step arguments. Sizes of the blur
// steps are normalized to the next odd value here so that assemble
// never violates the kernel preconditions of the engine.
func parseSteps(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, raw := range args {
		s, err := parseStep(raw)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func parseStep(raw string) (step, error) {
	name, arg, hasArg := strings.Cut(raw, "=")
	switch name {
	case "gaussian-blur", "average-blur", "median":
		if !hasArg {
			return step{}, fmt.Errorf("vision: step %q: %w: size required", raw, ErrBadArgument)
		}
		size, err := strconv.Atoi(arg)
		if err != nil {
			return step{}, fmt.Errorf("vision: step %q: %w: %v", raw, ErrBadArgument, err)
		}
		if size < 1 {
			return step{}, fmt.Errorf("vision: step %q: %w: size must be positive", raw, ErrBadArgument)
		}
		if name != "median" && size%2 == 0 {
			size++
		}
		return step{name: name, size: size}, nil

	case "gaussian-noise", "impulse-noise":
		if !hasArg {
			return step{}, fmt.Errorf("vision: step %q: %w: variance required", raw, ErrBadArgument)
		}
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return step{}, fmt.Errorf("vision: step %q: %w: %v", raw, ErrBadArgument, err)
		}
		if value <= 0 {
			return step{}, fmt.Errorf("vision: step %q: %w: variance must be positive", raw, ErrBadArgument)
		}
		return step{name: name, value: value}, nil

	case "canny":
		if !hasArg {
			return step{name: name, thresholds: []float64{0}}, nil
		}
		var thresholds []float64
		for _, field := range strings.Split(arg, ",") {
			t, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return step{}, fmt.Errorf("vision: step %q: %w: %v", raw, ErrBadArgument, err)
			}
			thresholds = append(thresholds, t)
		}
		return step{name: name, thresholds: thresholds}, nil

	case "grayscale", "gradient":
		if hasArg {
			return step{}, fmt.Errorf("vision: step %q: %w: takes no argument", raw, ErrBadArgument)
		}
		return step{name: name}, nil

	default:
		return step{}, fmt.Errorf("vision: %w %q", ErrUnknownStep, name)
	}
}

// assemble builds the deferred pipeline for the parsed steps, in order.
// Noise steps share gen so that a seeded run stays reproducible across
// any number of them.
func assemble(steps []step, gen *vision.Generator, snapshotDir string) vision.Pipeline {
	var p vision.Pipeline
	for i, s := range steps {
		switch s.name {
		case "gaussian-blur":
			variance := float64(s.size)/10 + 0.1
			p = p.Filter(vision.NewGenerator(s.size).GaussianNeedle(variance))
		case "average-blur":
			p = p.Filter(vision.NewGenerator(s.size).AverageNeedle())
		case "median":
			p = p.Filter(vision.Median(s.size))
		case "gaussian-noise":
			p = p.Ennoise(gen.GaussianNoise(0.5, 1/s.value, 0.7))
		case "impulse-noise":
			p = p.Ennoise(gen.SaltAndPepperNoise(s.value))
		case "canny":
			p = p.Canny(s.thresholds...)
		case "grayscale":
			p = p.Grayscale()
		case "gradient":
			p = p.Gradient()
		}
		if snapshotDir != "" {
			p = p.Tap(snapshotTo(snapshotDir, i+1, s.name))
		}
	}
	return p
}

// snapshotTo returns a tap that writes the intermediate surface as a
// numbered PNG. Failures are logged rather than aborting the run.
func snapshotTo(dir string, index int, name string) func(vision.Surface) {
	return func(s vision.Surface) {
		path := filepath.Join(dir, fmt.Sprintf("%02d-%s.png", index, name))
		if err := imageio.Save(path, s); err != nil {
			vision.Logger().Warn("snapshot failed", "path", path, "error", err)
		}
	}
}
