package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/docyard/treeml"
	"github.com/docyard/treeml/pkg/version"
)

type options struct {
	Format  string `short:"f" long:"format" description:"output format to diff in" choice:"json" choice:"json-pretty" choice:"properties" choice:"toml" choice:"yaml" choice:"yml" default:"yaml"`
	Version bool   `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		BasePath   flags.Filename `positional-arg-name:"basePath" required:"1" description:"base TOML file"`
		TargetPath flags.Filename `positional-arg-name:"targetPath" required:"1" description:"target TOML file"`
	} `positional-args:"yes"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
treeml-diff converts two TOML files and prints a unified diff of their
converted outputs.`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	result, err := treeml.Compare(string(opts.Positional.BasePath), string(opts.Positional.TargetPath), opts.Format)
	if err != nil {
		fatal(err)
	}

	fmt.Print(result.Diff)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
