// Package cli implements the huffman command: flag handling and the file I/O
// around the compress and decompress paths.
package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	huffman "github.com/Jerax1337/Huffman"
	"github.com/Jerax1337/Huffman/internal/logger"
)

// ErrUsage is returned by ParseArgs when the command line is not valid.
var ErrUsage = errors.New("usage error")

// ErrMalformedInput is returned when the file to compress is not valid UTF-8.
var ErrMalformedInput = errors.New("input is not valid UTF-8 text")

// Mode selects what Run does.
type Mode int

const (
	ModeNone Mode = iota
	ModeCompress
	ModeDecompress
)

var modeNames = []string{"none", "compress", "decompress"}

func (mode Mode) String() string {
	if mode >= 0 && int(mode) < len(modeNames) {
		return modeNames[mode]
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

// Config holds the resolved command line.
type Config struct {
	Name    string
	Input   string
	Output  string
	Mode    Mode
	Verbose bool
}

type flagValues struct {
	input      string
	output     string
	compress   bool
	decompress bool
	verbose    bool
}

func newFlagSet(name string, stderr io.Writer, fv *flagValues) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&fv.input, "f", "", "input file path (required)")
	fs.StringVar(&fv.input, "file", "", "same as -f")
	fs.StringVar(&fv.output, "o", "", "output file path (required)")
	fs.StringVar(&fv.output, "output", "", "same as -o")
	fs.BoolVar(&fv.compress, "c", false, "compress the input file")
	fs.BoolVar(&fv.decompress, "u", false, "decompress the input file")
	fs.BoolVar(&fv.verbose, "v", false, "log statistics and the code table")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s -f INPUT -o OUTPUT (-c | -u) [-v]\n", name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs parses args (without the program name) into a Config.  Errors for
// an invalid command line wrap ErrUsage, except that -h yields an error
// wrapping flag.ErrHelp.  Either way the usage message has already been
// written to stderr.
func ParseArgs(name string, args []string, stderr io.Writer) (Config, error) {
	var fv flagValues
	fs := newFlagSet(name, stderr, &fv)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, errors.Wrap(ErrUsage, err.Error())
	}

	var missing []string
	if fv.input == "" {
		missing = append(missing, "-f/--file")
	}
	if fv.output == "" {
		missing = append(missing, "-o/--output")
	}
	var err error
	switch {
	case fs.NArg() != 0:
		err = errors.Wrapf(ErrUsage, "unexpected arguments: %q", fs.Args())
	case len(missing) != 0:
		err = errors.Wrapf(ErrUsage, "missing required flags: %s", strings.Join(missing, ", "))
	case fv.compress && fv.decompress:
		err = errors.Wrap(ErrUsage, "-c and -u are mutually exclusive")
	}
	if err != nil {
		fmt.Fprintf(fs.Output(), "%s: %v\n", name, err)
		fs.Usage()
		return Config{}, err
	}

	cfg := Config{
		Name:    name,
		Input:   fv.input,
		Output:  fv.output,
		Verbose: fv.verbose,
	}
	switch {
	case fv.compress:
		cfg.Mode = ModeCompress
	case fv.decompress:
		cfg.Mode = ModeDecompress
	}
	return cfg, nil
}

// PrintUsage writes the usage message for the command called name.
func PrintUsage(name string, w io.Writer) {
	var fv flagValues
	newFlagSet(name, w, &fv).Usage()
}

// Run carries out cfg.  With ModeNone it prints the usage message to stderr
// and does nothing else.  The output file is written only once the whole
// result is ready, so a failed run leaves no output behind.
func Run(cfg Config, stderr io.Writer, log logger.Logger) error {
	var out []byte
	var err error
	switch cfg.Mode {
	case ModeCompress:
		out, err = compressFile(cfg, log)
	case ModeDecompress:
		out, err = decompressFile(cfg, log)
	default:
		fmt.Fprintln(stderr, "Please specify either compress (-c) or decompress (-u).")
		PrintUsage(cfg.Name, stderr)
		return nil
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, out, 0644); err != nil {
		return errors.Wrapf(err, "write %s", cfg.Output)
	}
	if cfg.Verbose {
		log.Infof("%s: wrote %d bytes to %s", cfg.Mode, len(out), cfg.Output)
	}
	return nil
}

func compressFile(cfg Config, log logger.Logger) ([]byte, error) {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", cfg.Input)
	}
	if !utf8.Valid(data) {
		return nil, errors.Wrapf(ErrMalformedInput, "read %s", cfg.Input)
	}

	res, err := huffman.Compress(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "compress %s", cfg.Input)
	}

	if cfg.Verbose {
		log.Infof("%s: %v", cfg.Input, res.Stats())
		var dump strings.Builder
		_, _ = res.Table.Dump(&dump)
		log.Infof("%s", dump.String())
	}

	var buf bytes.Buffer
	if err := huffman.WriteArtifact(&buf, res.Bits, res.Table); err != nil {
		return nil, errors.Wrapf(err, "compress %s", cfg.Input)
	}
	return buf.Bytes(), nil
}

func decompressFile(cfg Config, log logger.Logger) ([]byte, error) {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", cfg.Input)
	}

	bits, table, err := huffman.ParseArtifact(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decompress %s", cfg.Input)
	}
	text, err := huffman.Decompress(bits, table)
	if err != nil {
		return nil, errors.Wrapf(err, "decompress %s", cfg.Input)
	}

	if cfg.Verbose {
		log.Infof("%s: decoded %d bits with %d codes into %d bytes", cfg.Input, len(bits), len(table), len(text))
	}
	return []byte(text), nil
}
