package main

import (
	"strings"
	"testing"
)

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"md5", "hello"}},
		{"missing input", []string{"sha512"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var code int
			stderr := captureStderr(t, func() {
				code = run(tt.args)
			})
			if code != exitUsage {
				t.Errorf("exit = %d, want %d", code, exitUsage)
			}
			if !strings.Contains(stderr, "Usage: hashtool") {
				t.Errorf("stderr missing usage:\n%s", stderr)
			}
		})
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	for _, arg := range []string{"version", "--version", "-V"} {
		out := captureStdout(t, func() {
			if code := run([]string{arg}); code != 0 {
				t.Errorf("%s: exit = %d", arg, code)
			}
		})
		if !strings.HasPrefix(out, "hashtool "+version) {
			t.Errorf("%s: output = %q", arg, out)
		}
	}

	out := captureStdout(t, func() {
		if code := run([]string{"help"}); code != 0 {
			t.Errorf("help: exit = %d", code)
		}
	})
	for _, name := range []string{"bcrypt", "sha256", "sha512"} {
		if !strings.Contains(out, name) {
			t.Errorf("help output missing %s", name)
		}
	}
}

func TestRunSHA256(t *testing.T) {
	var code int
	out := captureStdout(t, func() {
		code = run([]string{"sha256", "hello"})
	})
	if code != 0 {
		t.Errorf("exit = %d", code)
	}
	if out != "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRunBcryptFlagAfterInput(t *testing.T) {
	var code int
	out := captureStdout(t, func() {
		code = run([]string{"bcrypt", "secret", "-c", "4"})
	})
	if code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	if !strings.HasPrefix(out, "$2a$04$") {
		t.Errorf("output = %q, want a cost-4 bcrypt hash", out)
	}
}

func TestMainProcess(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns subprocesses")
	}

	t.Run("sha256", func(t *testing.T) {
		out, _, code := runMainProcess(t, "sha256", "hello")
		if code != 0 {
			t.Fatalf("exit = %d", code)
		}
		if out != "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824\n" {
			t.Errorf("stdout = %q", out)
		}
	})

	t.Run("no command", func(t *testing.T) {
		out, stderr, code := runMainProcess(t)
		if code == 0 {
			t.Error("expected non-zero exit")
		}
		if out != "" {
			t.Errorf("unexpected stdout %q", out)
		}
		if !strings.Contains(stderr, "Usage: hashtool") {
			t.Errorf("stderr missing usage:\n%s", stderr)
		}
	})

	t.Run("bad cost", func(t *testing.T) {
		_, stderr, code := runMainProcess(t, "bcrypt", "--cost", "abc", "secret")
		if code != 2 {
			t.Errorf("exit = %d, want 2", code)
		}
		if !strings.Contains(stderr, "invalid value") {
			t.Errorf("stderr = %s", stderr)
		}
	})

	t.Run("bcrypt soft error exits zero", func(t *testing.T) {
		out, _, code := runMainProcess(t, "bcrypt", "-c", "0", "secret")
		if code != 0 {
			t.Errorf("exit = %d, want 0", code)
		}
		if !strings.HasPrefix(out, "ERROR: ") {
			t.Errorf("stdout = %q", out)
		}
	})
}
