// Command quadcolor opens a window with a colored quad and a debug panel for
// editing the color of each of its four vertices.
//
// Usage:
//
//	quadcolor [-config quadcolor.yaml] [-v]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/quadcolor/app"
	"github.com/go-theft-auto/quadcolor/backend/opengl"
	"github.com/go-theft-auto/quadcolor/config"
	"github.com/go-theft-auto/quadcolor/gui"
)

func init() {
	// GLFW and OpenGL must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("quadcolor", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config `file`")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := new(slog.LevelVar)
	if *verbose {
		level.Set(slog.LevelDebug)
	}
	gui.SetVerbose(*verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return app.ExitError
		}
	}

	return app.Execute(opengl.Platform{Logger: logger}, cfg, logger)
}
