package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/intuitionamiga/IntuitionVulkan/grammar"
	"github.com/intuitionamiga/IntuitionVulkan/jsonast"
	"github.com/intuitionamiga/IntuitionVulkan/spvgen"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: generate_spirv_parser <input-directory> <output-directory>\n\n")
		fmt.Fprintf(os.Stderr, "Reads the SPIR-V grammar JSON files from the input directory and\n")
		fmt.Fprintf(os.Stderr, "writes the generated parser and data model into the output directory.\n")
	}
	flag.Parse()

	if flag.NArg() != 2 || strings.HasPrefix(flag.Arg(0), "-") ||
		strings.HasPrefix(flag.Arg(1), "-") {
		flag.Usage()
		os.Exit(1)
	}
	inputDirectory := flag.Arg(0)
	outputDirectory := flag.Arg(1)

	if err := run(inputDirectory, outputDirectory); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorPrefix(), describe(err))
		os.Exit(1)
	}
}

func run(inputDirectory, outputDirectory string) error {
	files, err := grammar.ReadRequiredFiles(inputDirectory)
	if err != nil {
		return err
	}
	topLevel, err := grammar.Parse(files)
	if err != nil {
		return err
	}
	grammar.RunPatches(topLevel, grammar.Patches(), os.Stderr)
	return spvgen.RunGenerators(outputDirectory, topLevel)
}

// describe keeps the expected error families on one line each; anything else
// passes through unchanged.
func describe(err error) string {
	var jsonErr *jsonast.ParseError
	if errors.As(err, &jsonErr) {
		return jsonErr.Error()
	}
	var grammarErr *grammar.ParseError
	if errors.As(err, &grammarErr) {
		return grammarErr.Error()
	}
	var generateErr *spvgen.GenerateError
	if errors.As(err, &generateErr) {
		return generateErr.Error()
	}
	var fsErr *grammar.FilesystemError
	if errors.As(err, &fsErr) {
		return fsErr.Error()
	}
	return err.Error()
}

// errorPrefix colors the diagnostic when stderr is a terminal.
func errorPrefix() string {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return "\x1b[31merror:\x1b[0m"
	}
	return "error:"
}
