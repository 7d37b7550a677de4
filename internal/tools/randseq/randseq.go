// Package randseq implements the random sequence file writer tool.
//
// The tool prompts for a count and an inclusive range on its interactive
// input, generates that many uniform random integers, and writes them one
// per line to a text file.
package randseq

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/louisbranch/randseq/internal/platform/config"
	"github.com/louisbranch/randseq/internal/sequence"
)

// DefaultOutputPath is the output file written when no override is given.
const DefaultOutputPath = "randoms.txt"

// Prompts, in the fixed order they are issued.
const (
	PromptCount = "How many numbers to generate: "
	PromptMin   = "Minimum: "
	PromptMax   = "Maximum: "
)

// Config holds configuration for sequence generation.
type Config struct {
	OutputPath string
	Seed       int64
}

type envConfig struct {
	OutputPath string `env:"RANDSEQ_OUTPUT_PATH"`
	Seed       int64  `env:"RANDSEQ_SEED"`
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputPath: envCfg.OutputPath,
		Seed:       envCfg.Seed,
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "output file path (default: RANDSEQ_OUTPUT_PATH or randoms.txt)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = wall clock)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run prompts for the count, minimum and maximum on in, generates the
// sequence and writes it to cfg.OutputPath, one decimal integer per line.
// Prompts and the final success message go to out.
//
// The output file is created fresh on every run; a previous run's contents
// are discarded. If the file cannot be opened no generated output is kept.
func Run(cfg Config, in io.Reader, out io.Writer) error {
	if in == nil {
		return errors.New("input is required")
	}
	if out == nil {
		return errors.New("output is required")
	}

	reader := bufio.NewReader(in)

	count, err := promptInt(reader, out, PromptCount)
	if err != nil {
		return fmt.Errorf("read count: %w", err)
	}
	min, err := promptInt(reader, out, PromptMin)
	if err != nil {
		return fmt.Errorf("read minimum: %w", err)
	}
	max, err := promptInt(reader, out, PromptMax)
	if err != nil {
		return fmt.Errorf("read maximum: %w", err)
	}

	result, err := sequence.Generate(sequence.Request{
		Count: count,
		Min:   min,
		Max:   max,
		Seed:  cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("generate sequence: %w", err)
	}

	if err := writeValues(cfg.OutputPath, result.Values); err != nil {
		return err
	}

	fmt.Fprintf(out, "Done! Numbers written to %s\n", cfg.OutputPath)
	return nil
}

// promptInt writes prompt to out and reads one integer line from reader.
func promptInt(reader *bufio.Reader, out io.Writer, prompt string) (int, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return 0, err
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, err
	}

	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", strings.TrimSpace(line))
	}
	return value, nil
}

// writeValues writes each value as a newline-terminated decimal integer,
// truncating any existing file at path.
func writeValues(path string, values []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, v := range values {
		if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
			f.Close()
			return fmt.Errorf("write output file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}
