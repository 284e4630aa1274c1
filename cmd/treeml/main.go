package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/docyard/treeml"
	"github.com/docyard/treeml/pkg/log"
	"github.com/docyard/treeml/pkg/version"
)

type options struct {
	OutputPath   *flags.Filename `short:"o" long:"output" description:"output file path"`
	OutputFormat string          `short:"f" long:"format" description:"output format" choice:"json" choice:"json-pretty" choice:"properties" choice:"toml" choice:"yaml" choice:"yml" default:"yaml"`
	Verbose      bool            `short:"v" long:"verbose" description:"enable verbose logging"`
	Version      bool            `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		InputPaths []flags.Filename `positional-arg-name:"inputPath" required:"0" description:"input TOML file path (- for stdin)"`
	} `positional-args:"yes"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
treeml converts TOML documents into a generic document tree and emits them as
YAML, JSON, TOML, or Java properties.`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	if len(opts.Positional.InputPaths) == 0 {
		fp.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	if opts.Verbose {
		log.Debug = true
	}

	outs := [][]byte{}

	for _, path := range opts.Positional.InputPaths {
		out, err := convert(string(path), opts.OutputFormat)
		if err != nil {
			fatal(err)
		}

		outs = append(outs, out)
	}

	output := bytes.Join(outs, []byte("---\n"))

	if opts.OutputPath == nil {
		_, err = os.Stdout.Write(output)
	} else {
		err = os.WriteFile(string(*opts.OutputPath), output, 0o644)
	}

	if err != nil {
		fatal(err)
	}
}

func convert(path, format string) ([]byte, error) {
	if path == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}

		t, err := treeml.ParseTOMLNamed("stdin", src)
		if err != nil {
			return nil, err
		}

		return t.Output(format)
	}

	t, err := treeml.ParseTOMLFile(path)
	if err != nil {
		return nil, err
	}

	return t.Output(format)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
