// Command radix encodes and decodes text and bytes.
//
// Usage:
//
//	radix [flags] <codec> <encode|decode> [input]
//	radix [flags] jwt [token]
//	radix list
//	radix -i
//
// Input is read from standard input when it is omitted and
// standard input is not a terminal. A single trailing newline is
// removed from piped input.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ericlagergren/radix/codec"
	"github.com/ericlagergren/radix/internal/config"
	"github.com/ericlagergren/radix/internal/logging"
)

var errUsage = errors.New("invalid usage")

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: radix [flags] <codec> <encode|decode> [input]")
	fmt.Fprintln(w, "       radix [flags] jwt [token]")
	fmt.Fprintln(w, "       radix list")
	fmt.Fprintln(w, "       radix -i  (interactive mode)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Codecs: "+strings.Join(codec.Names(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("radix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		asBytes     = fs.Bool("bytes", false, "Print decoded output as hex bytes instead of text")
		copyOut     = fs.Bool("copy", cfg.Copy, "Copy the result to the clipboard")
		logLevel    = fs.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
		codecName   = fs.String("codec", cfg.DefaultCodec, "Initial codec in interactive mode")
		interactive = fs.Bool("i", false, "Interactive mode with TUI")
		qr          = fs.Bool("qr", false, "Also print the result as a QR code")
		qrURI       = fs.Bool("qr-uri", false, "Also print the result as a PNG QR code data URI")
	)
	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.New(stderr, *logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()
	logging.SetLogger(logger)
	logger.Debug("loaded config",
		zap.String("env_file", cfg.EnvFile),
		zap.String("log_level", *logLevel),
		zap.Bool("copy", *copyOut))

	if *interactive {
		if _, ok := codec.Lookup(*codecName); !ok && *codecName != jwtMode {
			return fmt.Errorf("unknown codec %q", *codecName)
		}
		return runInteractive(*codecName, *asBytes)
	}

	var out string
	switch name := fs.Arg(0); name {
	case "list":
		return list(stdout)

	case jwtMode, "token":
		in, err := input(fs.Args()[1:], stdin)
		if err != nil {
			fs.Usage()
			return err
		}
		out, err = transform(jwtMode, true, *asBytes, in)
		if err != nil {
			// The raw segments are still worth showing.
			if out != "" {
				fmt.Fprintln(stdout, out)
			}
			return err
		}

	case "":
		fs.Usage()
		return errUsage

	default:
		if fs.NArg() < 2 {
			fs.Usage()
			return errUsage
		}
		decode, err := direction(fs.Arg(1))
		if err != nil {
			return err
		}
		in, err := input(fs.Args()[2:], stdin)
		if err != nil {
			fs.Usage()
			return err
		}
		logging.Logger().Debug("converting",
			zap.String("codec", name),
			zap.Bool("decode", decode),
			zap.Int("input_bytes", len(in)))
		out, err = transform(name, decode, *asBytes, in)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, out)
	if *qr {
		code, err := qrText(out)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, code)
	}
	if *qrURI {
		uri, err := qrDataURI(out)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, uri)
	}
	if *copyOut {
		if err := writeClipboard(out); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		logging.Logger().Info("copied result to clipboard", zap.Int("length", len(out)))
	}
	return nil
}

func list(w io.Writer) error {
	for _, name := range codec.Names() {
		c, _ := codec.Lookup(name)
		fmt.Fprintf(w, "%-10s %s\n", name, c.Description())
	}
	fmt.Fprintf(w, "%-10s %s\n", jwtMode, "structure of a compact signed token (decode only)")
	return nil
}

func direction(s string) (decode bool, err error) {
	switch strings.ToLower(s) {
	case "encode", "enc", "e":
		return false, nil
	case "decode", "dec", "d":
		return true, nil
	}
	return false, fmt.Errorf("unknown direction %q: expected encode or decode", s)
}

// input returns the first argument, or all of stdin when there
// are no arguments and stdin is not a terminal.
func input(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("no input")
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	b = bytes.TrimSuffix(b, []byte("\n"))
	b = bytes.TrimSuffix(b, []byte("\r"))
	return b, nil
}
