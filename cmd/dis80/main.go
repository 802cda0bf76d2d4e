package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/grimdork/climate/arg"
	"github.com/tebeka/atexit"

	"github.com/Urethramancer/z80dis/disassembler"
	"github.com/Urethramancer/z80dis/opcode"
)

type config struct {
	input   string
	output  string
	verbose bool
}

type action int

const (
	actRun action = iota
	actHelp
	actUsage
)

func main() {
	opt := options()
	cfg, act, err := parseArgs(opt, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		atexit.Exit(1)
	}

	switch act {
	case actHelp:
		opt.PrintHelp()
		atexit.Exit(0)
	case actUsage:
		fmt.Fprintln(os.Stderr, "usage: dis80 -b <binfile> | --bin <binfile>")
		atexit.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// options declares the command line. The help flag is registered here
// rather than through SetDefaultHelp, which exits from inside Parse.
func options() *arg.Options {
	opt := arg.New("dis80")
	must(opt.SetOption(arg.GroupDefault, "h", "help", "Print this help message.", false, false, arg.VarBool, nil))
	must(opt.SetOption(arg.GroupDefault, "b", "bin", "Binary image to disassemble.", "", false, arg.VarString, nil))
	must(opt.SetOption(arg.GroupDefault, "o", "output", "Write the listing to this file instead of stdout.", "", false, arg.VarString, nil))
	must(opt.SetOption(arg.GroupDefault, "v", "verbose", "Log decoding details to stderr.", false, false, arg.VarBool, nil))
	return opt
}

// parseArgs reads the arguments after the program name. Help wins over a
// missing input file.
func parseArgs(opt *arg.Options, args []string) (config, action, error) {
	if len(args) == 0 {
		return config{}, actUsage, nil
	}

	err := opt.Parse(args)
	if errors.Is(err, arg.ErrNoArgs) {
		return config{}, actUsage, nil
	}
	if err != nil {
		return config{}, actRun, err
	}

	if opt.GetBool("help") {
		return config{}, actHelp, nil
	}

	cfg := config{
		input:   opt.GetString("bin"),
		output:  opt.GetString("output"),
		verbose: opt.GetBool("verbose"),
	}
	if cfg.input == "" {
		return cfg, actUsage, nil
	}
	return cfg, actRun, nil
}

// run reads the whole image, disassembles it and writes the listing to
// stdout or the configured output file. Nothing is written if decoding
// fails.
func run(cfg config, stdout io.Writer) error {
	code, err := os.ReadFile(cfg.input)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}
	slog.Debug("image loaded", "file", cfg.input, "bytes", len(code))

	listing, err := disassembler.New(opcode.Z80(), disassembler.WithLogger(slog.Default())).Disassemble(code)
	if err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}

	if cfg.output == "" {
		w := bufio.NewWriter(stdout)
		if _, err := listing.WriteTo(w); err != nil {
			return err
		}
		return w.Flush()
	}

	err = writeFile(cfg.output, func(w io.Writer) error {
		_, err := listing.WriteTo(w)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Disassembly written to %s\n", cfg.output)
	return nil
}

// writeFile writes to a temporary file next to path and renames it into
// place once everything is flushed. On failure nothing is left behind.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err = write(w); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	return nil
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		atexit.Exit(2)
	}
}
