package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atiedebee/huff/internal/config"
	"github.com/atiedebee/huff/internal/huffman"
	"github.com/atiedebee/huff/internal/logger"
	"github.com/atiedebee/huff/internal/metrics"
	"github.com/atiedebee/huff/internal/report"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Mode uint8

const (
	CompressMode Mode = iota
	DecompressMode
)

var errUsage = errors.New("usage: huff [-c|-d] [-f] [-p] [-r] [-v] [-C config] [-m metrics] [-o output] [input]")

type options struct {
	mode        Mode
	finName     string
	foutName    string
	confName    string
	metricsName string
	doPrintTree bool
	framed      bool
	ratio       bool
	verbose     bool
}

// overrides turns the flags that were given into config keys so they win
// over the config file and environment.
func (o *options) overrides() map[string]any {
	m := map[string]any{}
	if o.framed {
		m["codec.framed"] = true
	}
	if o.ratio {
		m["report.ratio"] = true
	}
	if o.verbose {
		m["logger.level"] = "debug"
	}
	if o.metricsName != "" {
		m["metrics.file"] = o.metricsName
	}
	return m
}

func parseArgs(args []string) (options, error) {
	opts := options{mode: CompressMode}

	value := func(i int, flag string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s must be followed by a file name: %w", flag, errUsage)
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "-c":
			opts.mode = CompressMode
		case "-d":
			opts.mode = DecompressMode
		case "-o":
			opts.foutName, err = value(i, "-o")
			i++
		case "-C":
			opts.confName, err = value(i, "-C")
			i++
		case "-m":
			opts.metricsName, err = value(i, "-m")
			i++
		case "-p":
			opts.doPrintTree = true
		case "-f":
			opts.framed = true
		case "-r":
			opts.ratio = true
		case "-v":
			opts.verbose = true
		default:
			if len(args[i]) > 1 && args[i][0] == '-' {
				return opts, fmt.Errorf("unknown option %s: %w", args[i], errUsage)
			}
			if opts.finName != "" {
				return opts, fmt.Errorf("more than one input file: %w", errUsage)
			}
			opts.finName = args[i]
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func writeOutput(name string, data []byte, stdout io.Writer) error {
	if name == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// printTree draws the tree of a compressed stream, or of the tree that
// compressing input would build.
func printTree(w io.Writer, mode Mode, framed bool, input []byte) error {
	var tree *huffman.Tree
	switch mode {
	case CompressMode:
		t, err := huffman.BuildTree(huffman.Count(input))
		if err != nil {
			return err
		}
		tree = t
	case DecompressMode:
		stream := input
		if framed {
			s, _, err := huffman.Open(input)
			if err != nil {
				return err
			}
			stream = s
		}
		bits, err := huffman.Unpack(stream)
		if err != nil {
			return err
		}
		t, _, err := huffman.DeserializeTree(&bits, 0)
		if err != nil {
			return err
		}
		tree = t
	}
	return tree.Print(w)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	conf, err := config.Load(opts.confName, opts.overrides())
	if err != nil {
		return err
	}
	logg, err := logger.New(conf, stderr)
	if err != nil {
		return err
	}
	m := metrics.New(conf.String("metrics.prefix", "huff_"))
	obs := huffman.MultiObserver(logger.NewObserver(logg), m)
	framed := conf.Bool("codec.framed")

	input, err := readInput(opts.finName, stdin)
	if err != nil {
		return err
	}

	if opts.doPrintTree {
		if err := printTree(stderr, opts.mode, framed, input); err != nil {
			return err
		}
	}

	var output []byte
	switch opts.mode {
	case CompressMode:
		enc := huffman.NewEncoder(huffman.WithObserver(obs))
		if framed {
			output, err = enc.CompressFrame(input)
		} else {
			output, err = enc.Compress(input)
		}
	case DecompressMode:
		dec := huffman.NewDecoder(huffman.WithObserver(obs))
		if framed {
			output, err = dec.DecompressFrame(input)
		} else {
			output, err = dec.Decompress(input)
		}
	}
	if err != nil {
		return err
	}

	if err := writeOutput(opts.foutName, output, stdout); err != nil {
		return err
	}

	if conf.Bool("report.ratio") {
		r := report.Ratio{Before: int64(len(input)), After: int64(len(output))}
		if opts.mode == DecompressMode {
			r = report.Ratio{Before: int64(len(output)), After: int64(len(input))}
		}
		if opts.finName != "" && opts.foutName != "" {
			uncompressed, compressed := opts.finName, opts.foutName
			if opts.mode == DecompressMode {
				uncompressed, compressed = compressed, uncompressed
			}
			if r, err = report.Files(uncompressed, compressed); err != nil {
				return err
			}
		}
		fmt.Fprintln(stderr, r)
	}

	if path := conf.String("metrics.file"); path != "" {
		if err := m.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("huff")
	}
}
