package hash

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when none is given.
const DefaultCost = 12

// maxBcryptInput is the number of input bytes bcrypt reads; the rest is dropped.
const maxBcryptInput = 72

// errorPrefix marks a bcrypt failure rendered as normal output.
const errorPrefix = "ERROR: "

// Algorithm selects one of the supported hash functions.
type Algorithm int

const (
	Bcrypt Algorithm = iota
	SHA256
	SHA512
)

var algorithmNames = [...]string{
	Bcrypt: "bcrypt",
	SHA256: "sha256",
	SHA512: "sha512",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Invocation is a single parsed request. Cost is only read for Bcrypt.
type Invocation struct {
	Algorithm Algorithm
	Cost      int
	Input     string
}

// Config holds configuration for the hash commands.
type Config struct {
	Invocation
	Stdout io.Writer
}

// Option configures a Config.
type Option func(*Config)

func WithAlgorithm(a Algorithm) Option { return func(c *Config) { c.Algorithm = a } }
func WithCost(cost int) Option         { return func(c *Config) { c.Cost = cost } }
func WithInput(input string) Option    { return func(c *Config) { c.Input = input } }
func WithStdout(w io.Writer) Option    { return func(c *Config) { c.Stdout = w } }

// Run hashes the configured input and writes the result as a single line.
// A bcrypt failure is written as "ERROR: <message>" and is not returned.
func Run(opts ...Option) error {
	cfg := &Config{
		Invocation: Invocation{Algorithm: SHA256, Cost: DefaultCost},
		Stdout:     os.Stdout,
	}
	for _, o := range opts {
		o(cfg)
	}

	out, err := Compute(cfg.Invocation)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cfg.Stdout, out); err != nil {
		return fmt.Errorf("writing %s hash: %w", cfg.Algorithm, err)
	}
	return nil
}

// Compute returns the output line for inv without the trailing newline.
// Bcrypt failures are rendered as "ERROR: <message>"; only an unknown
// algorithm is returned as an error.
func Compute(inv Invocation) (string, error) {
	switch inv.Algorithm {
	case Bcrypt:
		h, err := bcryptHash(inv.Cost, inv.Input)
		if err != nil {
			slog.Warn("bcrypt failed", "cost", inv.Cost, "error", err)
			return errorPrefix + err.Error(), nil
		}
		return h, nil
	case SHA256:
		return SHA256Hex(inv.Input), nil
	case SHA512:
		return SHA512Hex(inv.Input), nil
	}
	return "", fmt.Errorf("unknown algorithm: %s", inv.Algorithm)
}

// BcryptHash returns the encoded bcrypt hash of input, or "ERROR: <message>"
// if the cost is outside bcrypt.MinCost..bcrypt.MaxCost or hashing fails.
// Only the first 72 bytes of input take part in the hash.
func BcryptHash(cost int, input string) string {
	h, err := bcryptHash(cost, input)
	if err != nil {
		return errorPrefix + err.Error()
	}
	return h
}

func bcryptHash(cost int, input string) (string, error) {
	// GenerateFromPassword silently replaces a low cost with DefaultCost.
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", bcrypt.InvalidCostError(cost)
	}
	pw := []byte(input)
	if len(pw) > maxBcryptInput {
		pw = pw[:maxBcryptInput]
	}
	h, err := bcrypt.GenerateFromPassword(pw, cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// SHA256Hex returns the lowercase hex SHA-256 digest of input.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// SHA512Hex returns the lowercase hex SHA-512 digest of input.
func SHA512Hex(input string) string {
	sum := sha512.Sum512([]byte(input))
	return hex.EncodeToString(sum[:])
}
