// SPDX-License-Identifier: Unlicense OR MIT

// Command glprobe creates off-screen OpenGL contexts and prints the
// addresses of OpenGL functions resolved through them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"gioui.org/glcontext"
)

var (
	reusable    = flag.Bool("reusable", false, "create reusable contexts and resolve every function twice")
	count       = flag.Int("n", 1, "number of contexts to probe concurrently")
	pixelFormat = flag.Int("pixelformat", 1, "pixel format index")
	verbose     = flag.Bool("v", false, "log context lifecycle events")
	debugView   = flag.Bool("debugview", false, "send log output to the Windows debugger")
	info        = flag.Bool("info", false, "print GL_VERSION and GL_RENDERER of the first context")
)

var defaultFunctions = []string{
	"glClear",
	"glGetString",
	"glCreateShader",
	"glGenFramebuffers",
}

const mainUsage = `The glprobe command creates off-screen OpenGL contexts and
resolves OpenGL functions through them.

Usage:

	glprobe [flags] [function names]

Without function names, a small set of core and extension functions is
resolved. Unresolved functions print as 0x0.

`

type result struct {
	name string
	addr uintptr
}

type probe struct {
	results  []result
	version  string
	renderer string
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "glprobe: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr(w io.Writer) error {
	if *count < 1 {
		return fmt.Errorf("invalid -n %d", *count)
	}
	if *verbose {
		glcontext.SetLogger(slog.New(slog.NewTextHandler(logOutput(*debugView), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	names := functionNames(flag.Args())
	probes := make([]probe, *count)
	var g errgroup.Group
	for i := range probes {
		i := i
		g.Go(func() error {
			p, err := runProbe(names, *info && i == 0)
			if err != nil {
				return fmt.Errorf("context %d: %w", i, err)
			}
			probes[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return printProbes(w, probes)
}

// functionNames returns args without duplicates, or the default set if
// args is empty.
func functionNames(args []string) []string {
	if len(args) == 0 {
		return defaultFunctions
	}
	seen := make(map[string]bool)
	var names []string
	for _, a := range args {
		if seen[a] {
			continue
		}
		seen[a] = true
		names = append(names, a)
	}
	return names
}

func runProbe(names []string, withInfo bool) (probe, error) {
	// The window and the current context belong to this thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	opts := []glcontext.Option{glcontext.PixelFormat(*pixelFormat)}
	if *reusable {
		opts = append(opts, glcontext.Reusable())
	}
	ctx, err := glcontext.New(opts...)
	if err != nil {
		return probe{}, err
	}
	defer ctx.Release()
	var p probe
	err = ctx.Do(func() error {
		p.results, err = resolve(ctx, names)
		if err != nil {
			return err
		}
		if withInfo {
			p.version, p.renderer, err = glInfo(ctx)
		}
		return err
	})
	if err != nil || !*reusable {
		return p, err
	}
	// Activate again and check that the context still resolves the same
	// addresses.
	err = ctx.Do(func() error {
		again, err := resolve(ctx, names)
		if err != nil {
			return err
		}
		for i, r := range again {
			if r.addr != p.results[i].addr {
				return fmt.Errorf("%s resolved to %#x, then to %#x", r.name, p.results[i].addr, r.addr)
			}
		}
		return nil
	})
	return p, err
}

func resolve(ctx *glcontext.Context, names []string) ([]result, error) {
	var res []result
	for _, name := range names {
		addr, err := ctx.ResolveFunction(name)
		if err != nil {
			if errors.Is(err, glcontext.ErrInvalidArgument) {
				return nil, fmt.Errorf("%q: %w", name, err)
			}
			return nil, err
		}
		res = append(res, result{name: name, addr: addr})
	}
	return res, nil
}

func printProbes(w io.Writer, probes []probe) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for i, p := range probes {
		if len(probes) > 1 {
			fmt.Fprintf(tw, "context %d\n", i)
		}
		if p.version != "" {
			fmt.Fprintf(tw, "GL_VERSION\t%s\n", p.version)
			fmt.Fprintf(tw, "GL_RENDERER\t%s\n", p.renderer)
		}
		for _, r := range p.results {
			fmt.Fprintf(tw, "%s\t%#x\n", r.name, r.addr)
		}
	}
	return tw.Flush()
}
