package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	json "github.com/goccy/go-json"

	formbind "github.com/reoring/formbind"
	"github.com/reoring/formbind/source"
)

// errUsage makes main exit with status 2 after the usage text was printed.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fatalf("%v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		usage(stderr)
		return errUsage
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "parse":
		return parseCmd(rest, stdout, stderr)
	case "get":
		return getCmd(rest, stdout, stderr)
	case "set":
		return setCmd(rest, stdout, stderr)
	case "delete":
		return deleteCmd(rest, stdout, stderr)
	case "replay":
		return replayCmd(rest, stdout, stderr)
	default:
		usage(stderr)
		return errUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "formbind CLI\n\nUsage:\n  formbind parse ADDRESS\n  formbind get -f FILE [-dump] ADDRESS\n  formbind set -f FILE [-o OUT] ADDRESS VALUE\n  formbind delete -f FILE [-o OUT] ADDRESS\n  formbind replay -f FILE -script SCRIPT.yaml [-config SETTINGS.yaml] [-o OUT] [-v]\n\nNotes:\n  - FILE and OUT formats are picked by extension (.json, .yaml, .yml, .hcl).\n  - Without -o the resulting graph is written to stdout in the format of FILE.")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func parseCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("parse", stderr)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	address := fs.Arg(0)
	segs := formbind.ParseAddress(address)
	out, err := json.Marshal(segs)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "segments: %s\npointer:  %s\n", out, formbind.Pointer(address))
	return nil
}

func getCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("get", stderr)
	var file string
	var dump bool
	fs.StringVar(&file, "f", "", "graph file (.json, .yaml, .yml, .hcl)")
	fs.BoolVar(&dump, "dump", false, "print a Go value dump instead of JSON")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if file == "" || fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	root, err := source.Load(file)
	if err != nil {
		return err
	}
	loc, err := formbind.Resolve(root, fs.Arg(0), nil)
	if err != nil {
		return err
	}
	v := loc.Get()
	if dump {
		spew.Fdump(stdout, v)
		return nil
	}
	out, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(out))
	return nil
}

func setCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("set", stderr)
	var file, out string
	fs.StringVar(&file, "f", "", "graph file (.json, .yaml, .yml, .hcl)")
	fs.StringVar(&out, "o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if file == "" || fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}
	return edit(file, out, stdout, func(root any) error {
		loc, err := formbind.Resolve(root, fs.Arg(0), nil)
		if err != nil {
			return err
		}
		return loc.Set(fs.Arg(1))
	})
}

func deleteCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("delete", stderr)
	var file, out string
	fs.StringVar(&file, "f", "", "graph file (.json, .yaml, .yml, .hcl)")
	fs.StringVar(&out, "o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if file == "" || fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	return edit(file, out, stdout, func(root any) error {
		loc, err := formbind.Resolve(root, fs.Arg(0), nil)
		if err != nil {
			return err
		}
		return loc.Delete()
	})
}

// edit loads file, applies fn and writes the graph to out or stdout.
func edit(file, out string, stdout io.Writer, fn func(root any) error) error {
	loaded, err := source.Load(file)
	if err != nil {
		return err
	}
	root, result := holdRoot(loaded)
	if err := fn(root); err != nil {
		return err
	}
	return emit(file, out, stdout, result())
}

// holdRoot puts a top-level sequence behind a pointer so edits can change
// its length. result returns the current graph.
func holdRoot(v any) (root any, result func() any) {
	if s, ok := v.([]any); ok {
		p := &s
		return p, func() any { return *p }
	}
	return v, func() any { return v }
}

func emit(file, out string, stdout io.Writer, v any) error {
	if out != "" {
		return source.Save(out, v)
	}
	d, err := source.ForPath(file)
	if err != nil {
		return err
	}
	return d.Encode(stdout, v)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "formbind: "+format+"\n", a...)
	os.Exit(1)
}
