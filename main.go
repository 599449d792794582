// hashtool computes a bcrypt, SHA-256, or SHA-512 hash of a text string given
// on the command line and prints it to standard output.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
)

const version = "1.0.0"

// exitUsage is the status for malformed command lines, matching flag.ExitOnError.
const exitUsage = 2

// errUsage is returned by a command after it has already printed its usage.
var errUsage = errors.New("usage error")

var commands = map[string]func([]string) error{
	"bcrypt": cmdBcrypt,
	"sha256": cmdSHA256,
	"sha512": cmdSHA512,
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	os.Exit(run(os.Args[1:]))
}

// run executes one command line and returns the process exit status.
func run(args []string) int {
	if len(args) < 1 {
		printUsage(os.Stderr)
		return exitUsage
	}

	cmd := args[0]
	fn, ok := commands[cmd]
	if !ok {
		switch cmd {
		case "version", "-version", "--version", "-V":
			fmt.Println(versionString())
			return 0
		case "help", "-h", "-help", "--help":
			printUsage(os.Stdout)
			return 0
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(os.Stderr)
		return exitUsage
	}

	if err := fn(args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		slog.Error("command failed", "command", cmd, "error", err)
		return 1
	}
	return 0
}

func versionString() string {
	goVer := "unknown"
	if bi, ok := debug.ReadBuildInfo(); ok {
		goVer = bi.GoVersion
	}
	return fmt.Sprintf("hashtool %s (built with %s)", version, goVer)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `hashtool %s - hash a text string

Usage: hashtool <command> [options] <input_text>

Commands:
  bcrypt     Use the bcrypt algorithm for hashing (-c, --cost; default 12)
  sha256     Use the SHA-256 algorithm for hashing
  sha512     Use the SHA-512 algorithm for hashing
  version    Show version information

Run 'hashtool <command> -h' for help on a specific command.
`, version)
}
