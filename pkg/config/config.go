// Package config resolves the render parameters from defaults, an
// optional TOML config file, and command-line flags, in that order of
// increasing precedence.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
	"github.com/rkuwahara/go-path-tracer/pkg/renderer"
)

// DefaultConfigFile is consulted when no -config flag is given
const DefaultConfigFile = "renderconfig.toml"

// DefaultOutput is the output path when no positional argument is given
const DefaultOutput = "image.ppm"

// Options holds the non-tracer settings from the command line
type Options struct {
	Output       string
	ConfigFile   string
	Scene        string
	SingleThread bool
	Force        bool
	ResizeWidth  int
}

// Parse resolves tracer parameters and options from the given argument
// list (without the program name). Diagnostics for recoverable problems
// (missing config file, unparsable values) go to stderr and the
// affected fields keep their defaults.
func Parse(args []string, stderr io.Writer) (renderer.TracerParams, Options, error) {
	params := renderer.DefaultTracerParams()
	opts := Options{Output: DefaultOutput}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "config file (default 'renderconfig.toml')")
	height := fs.Int("height", params.Height, "image height in pixels")
	sampling := fs.Int("sampling", params.SamplingRate, "samples per pixel")
	depth := fs.Int("depth", params.MaxDepth, "maximum ray bounce depth")
	vfov := fs.Float64("vfov", params.Vfov, "vertical field of view in degrees")
	angle := fs.Float64("angle", params.DefocusAngle, "defocus angle in degrees")
	focus := fs.Float64("focus", params.FocusDistance, "focus distance")
	lookFrom := fs.String("look-from", "", "camera position as FLOAT/FLOAT/FLOAT")
	lookAt := fs.String("look-at", "", "camera target as FLOAT/FLOAT/FLOAT")
	seed := fs.Int64("seed", params.Seed, "random seed")
	sceneName := fs.String("scene", "", "scene name (omit for a random scene)")
	singleThread := fs.Bool("single-thread", false, "render on a single thread")
	force := fs.Bool("force", false, "overwrite the output file if it exists")
	resizeWidth := fs.Int("resize", 0, "downscale PNG output to this width (0 = off)")

	if err := fs.Parse(args); err != nil {
		return params, opts, err
	}

	if fs.NArg() > 0 {
		opts.Output = fs.Arg(0)
	}

	// Config file first, so explicit flags can override it below
	opts.ConfigFile = *configFile
	if opts.ConfigFile == "" {
		fmt.Fprintf(stderr, "No config file specified. Using default config file: '%s'\n", DefaultConfigFile)
		opts.ConfigFile = DefaultConfigFile
	} else {
		fmt.Fprintf(stderr, "Using config file: '%s'\n", opts.ConfigFile)
	}
	applyConfigFile(opts.ConfigFile, &params, stderr)

	// Flags the user actually set win over file values
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["height"] {
		params.Height = *height
	}
	if set["sampling"] {
		params.SamplingRate = *sampling
	}
	if set["depth"] {
		params.MaxDepth = *depth
	}
	if set["vfov"] {
		params.Vfov = *vfov
	}
	if set["angle"] {
		params.DefocusAngle = *angle
	}
	if set["focus"] {
		params.FocusDistance = *focus
	}
	if set["seed"] {
		params.Seed = *seed
	}
	if set["look-from"] {
		if v, err := ParseVector(*lookFrom); err == nil {
			params.LookFrom = v
		} else {
			fmt.Fprintf(stderr, "Ignoring invalid -look-from %q: %v\n", *lookFrom, err)
		}
	}
	if set["look-at"] {
		if v, err := ParseVector(*lookAt); err == nil {
			params.LookAt = v
		} else {
			fmt.Fprintf(stderr, "Ignoring invalid -look-at %q: %v\n", *lookAt, err)
		}
	}

	opts.Scene = *sceneName
	opts.SingleThread = *singleThread
	opts.Force = *force
	opts.ResizeWidth = *resizeWidth

	return params, opts, nil
}

// applyConfigFile merges string-valued keys from a TOML file into the
// parameters. A missing or unreadable file logs and keeps defaults, as
// does any individual value that fails to parse.
func applyConfigFile(path string, params *renderer.TracerParams, stderr io.Writer) {
	var values map[string]string
	if _, err := toml.DecodeFile(path, &values); err != nil {
		fmt.Fprintf(stderr, "Failed to read config file: %v\n", err)
		return
	}

	applyInt := func(key string, dest *int) {
		raw, ok := values[key]
		if !ok {
			return
		}
		if v, err := strconv.Atoi(raw); err == nil {
			*dest = v
		} else {
			fmt.Fprintf(stderr, "Ignoring config value %s=%q: %v\n", key, raw, err)
		}
	}
	applyFloat := func(key string, dest *float64) {
		raw, ok := values[key]
		if !ok {
			return
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			*dest = v
		} else {
			fmt.Fprintf(stderr, "Ignoring config value %s=%q: %v\n", key, raw, err)
		}
	}
	applyVector := func(key string, dest *core.Vec3) {
		raw, ok := values[key]
		if !ok {
			return
		}
		if v, err := ParseVector(raw); err == nil {
			*dest = v
		} else {
			fmt.Fprintf(stderr, "Ignoring config value %s=%q: %v\n", key, raw, err)
		}
	}

	applyInt("height", &params.Height)
	applyInt("sampling", &params.SamplingRate)
	applyInt("depth", &params.MaxDepth)
	applyFloat("vfov", &params.Vfov)
	applyFloat("angle", &params.DefocusAngle)
	applyFloat("focus", &params.FocusDistance)
	applyVector("look_from", &params.LookFrom)
	applyVector("look_at", &params.LookAt)
}

// ParseVector parses a slash-separated vector like "13.0/2.0/3.0"
func ParseVector(s string) (core.Vec3, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}

	var components [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		components[i] = v
	}

	return core.NewVec3(components[0], components[1], components[2]), nil
}
