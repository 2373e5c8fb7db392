// Command achl is a thin CLI front end over the mirror highlighter mode;
// the clangd and gcc modes are reachable only as library calls.
// It is deliberately not where any tokenizing or coloring logic lives —
// see the clangd, mirror, and gcc packages for that.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/achl-go/achl/mirror"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	fs := flag.NewFlagSet("achl", flag.ContinueOnError)
	replace := fs.Bool("replace", false, "replace underscores with hyphens in CSS class names")
	showVersion := fs.Bool("version", false, "print version and exit")
	showHelp := fs.Bool("help", false, "print usage and exit")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: achl [--replace] <input_code> <input_color> <output_html>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showHelp {
		fs.Usage()
		return 0
	}

	if *showVersion {
		fmt.Println("achl", version)
		return 0
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return 2
	}

	codePath, colorPath, outPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	code, err := os.ReadFile(codePath)
	if err != nil {
		logger.Error("read code file", "path", codePath, "error", err)
		return 1
	}
	color, err := os.ReadFile(colorPath)
	if err != nil {
		logger.Error("read color file", "path", colorPath, "error", err)
		return 1
	}

	logger.Info("highlighting", "mode", "mirror", "code", codePath, "color", colorPath)

	opts := mirror.Options{
		Generation: mirror.GenerationOptions{ReplaceUnderscoresToHyphens: *replace},
		Color:      mirror.DefaultColorOptions(),
	}

	html, err := mirror.Highlight(string(code), string(color), opts)
	if err != nil {
		logger.Error("highlight failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		logger.Error("write output file", "path", outPath, "error", err)
		return 1
	}

	logger.Info("wrote output", "path", outPath, "bytes", len(html))
	return 0
}
