package main

import (
	"flag"
	"fmt"

	"github.com/jftuga/hashtool/internal/hash"
)

func cmdSHA256(args []string) error { return cmdDigest(hash.SHA256, args) }
func cmdSHA512(args []string) error { return cmdDigest(hash.SHA512, args) }

// cmdDigest runs one of the fixed-digest commands, which take no flags.
func cmdDigest(algo hash.Algorithm, args []string) error {
	fs := flag.NewFlagSet(algo.String(), flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: hashtool %s <input_text>\n", algo)
	}

	input, err := inputText(fs, parseArgs(fs, args))
	if err != nil {
		return err
	}

	return hash.Run(
		hash.WithAlgorithm(algo),
		hash.WithInput(input),
	)
}

// parseArgs parses fs from args and returns the positional arguments. Flags
// may appear before or after positionals; everything after "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) []string {
	var positional []string
	for {
		fs.Parse(args)
		rest := fs.Args()
		if len(rest) == 0 {
			return positional
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...)
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// inputText returns the single positional argument.
func inputText(fs *flag.FlagSet, positional []string) (string, error) {
	if len(positional) != 1 {
		if len(positional) == 0 {
			fmt.Fprintln(fs.Output(), "missing required argument: <input_text>")
		} else {
			fmt.Fprintf(fs.Output(), "unexpected arguments: %q\n", positional[1:])
		}
		fs.Usage()
		return "", errUsage
	}
	return positional[0], nil
}
