package main

import (
	"flag"
	"fmt"

	"github.com/jftuga/hashtool/internal/hash"
)

func cmdBcrypt(args []string) error {
	fs := flag.NewFlagSet("bcrypt", flag.ExitOnError)
	var cost uint
	fs.UintVar(&cost, "cost", hash.DefaultCost, "the cost value for hashing the input text")
	fs.UintVar(&cost, "c", hash.DefaultCost, "shorthand for -cost")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: hashtool bcrypt [-c|--cost <uint>] <input_text>")
		fs.PrintDefaults()
	}

	input, err := inputText(fs, parseArgs(fs, args))
	if err != nil {
		return err
	}

	return hash.Run(
		hash.WithAlgorithm(hash.Bcrypt),
		hash.WithCost(costInt(cost)),
		hash.WithInput(input),
	)
}

// costInt narrows a parsed cost without wrapping to a negative value that
// bcrypt would report under a different number.
func costInt(cost uint) int {
	const maxInt = int(^uint(0) >> 1)
	if cost > uint(maxInt) {
		return maxInt
	}
	return int(cost)
}
