package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/rkuwahara/go-path-tracer/pkg/config"
	"github.com/rkuwahara/go-path-tracer/pkg/core"
	"github.com/rkuwahara/go-path-tracer/pkg/output"
	"github.com/rkuwahara/go-path-tracer/pkg/progress"
	"github.com/rkuwahara/go-path-tracer/pkg/renderer"
	"github.com/rkuwahara/go-path-tracer/pkg/scene"
)

func main() {
	params, opts, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	// Refuse bad output paths before spending time rendering
	if err := checkOutputPath(opts.Output, opts.Force); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// One sampler seeds both the scene pick and its construction, so a
	// fixed seed reproduces the whole render
	sampler := core.NewSampler(params.Seed)
	builder, sceneName, found := scene.Lookup(opts.Scene, sampler)
	switch {
	case found:
		fmt.Fprintf(os.Stderr, "Using scene: '%s'\n", sceneName)
	case opts.Scene == "":
		fmt.Fprintf(os.Stderr, "Scene not specified. Randomly selecting scene: '%s'\n", sceneName)
		fmt.Fprintf(os.Stderr, "Specify a scene with -scene (options: %s)\n", strings.Join(scene.Names(), ", "))
	default:
		fmt.Fprintf(os.Stderr, "Scene '%s' not found. Randomly selected scene: '%s'\n", opts.Scene, sceneName)
	}
	world := builder(sampler)

	tracer := renderer.NewRayTracer(params)
	tracer.SetProgress(progress.NewReporter(os.Stderr).Update)

	start := time.Now()
	var img *renderer.Image
	if opts.SingleThread {
		img = tracer.Render(world)
	} else {
		img = tracer.RenderMulti(world)
	}
	fmt.Printf("Rendering took %.2f seconds\n", time.Since(start).Seconds())

	if err := writeImage(opts.Output, img, opts.ResizeWidth); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// checkOutputPath rejects directory targets outright and asks before
// overwriting an existing file unless -force was given
func checkOutputPath(path string, force bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking output path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("output path '%s' is a directory", path)
	}

	if force {
		fmt.Fprintf(os.Stderr, "File %s exists. Will overwrite.\n", path)
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("output file '%s' exists (use -force to overwrite)", path)
	}

	fmt.Fprintf(os.Stderr, "File already exists! (%s)\n", path)
	fmt.Fprint(os.Stderr, "Proceed anyway [y/N]? ")
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer != "y" {
		return fmt.Errorf("aborted")
	}
	return nil
}

// writeImage picks the format from the file extension: .png gets a PNG
// (optionally downscaled), everything else the ASCII PPM format.
// A failed close surfaces as an error too, since buffered data may only
// hit the disk then.
func writeImage(path string, img *renderer.Image, resizeWidth int) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		return output.WritePNG(file, img, resizeWidth)
	}
	return output.WritePPM(file, img)
}
