package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProgram(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.txt")
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name   string
		prog   string
		args   []string
		code   int
		stdout string
	}{
		{"Echo", "3,0,4,0,99", []string{"-i", "55"}, exitOK, "55\n"},
		{"InputOrder", "3,0,3,1,4,0,4,1,99", []string{"--input", "1,2"}, exitOK, "1,2\n"},
		{"Memory", "1,0,0,0,99", []string{"--memory"}, exitOK, "2,0,0,0,99\n"},
		{"NounVerb", "1,0,0,0,99", []string{"--noun", "4", "--verb", "4", "-m"}, exitOK, "198,4,4,0,99\n"},
		{"Blocked", "3,0,99", nil, exitBlocked, ""},
		{"Sentinel", "3,0,4,0,99", []string{"--sentinel"}, exitOK, "-1\n"},
		{"Fault", "1,100,0,0,99", nil, exitFailure, ""},
		{"Disasm", "1002,4,3,4,33", []string{"-d"}, exitOK, "   0: mul [4] 3 [4]\n   4: data 33\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append(test.args, writeProgram(t, test.prog))
			code := run(args, nil, &stdout, &stderr)
			if code != test.code {
				t.Fatalf("exit %d, want %d (stderr %q)", code, test.code, stderr.String())
			}
			if stdout.String() != test.stdout {
				t.Fatalf("stdout = %q, want %q", stdout.String(), test.stdout)
			}
		})
	}
}

func TestCommandStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-i", "8", "-"}, strings.NewReader("3,9,8,9,10,9,4,9,99,-1,8\n"), &stdout, &stderr)
	if code != exitOK || stdout.String() != "1\n" {
		t.Fatalf("exit %d stdout %q stderr %q", code, stdout.String(), stderr.String())
	}
}

func TestCommandErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, nil, &stdout, &stderr); code != exitFailure {
		t.Fatalf("no arguments: exit %d", code)
	}

	stderr.Reset()
	if code := run([]string{writeProgram(t, "1,x")}, nil, &stdout, &stderr); code != exitFailure {
		t.Fatalf("bad program: exit %d", code)
	}
	if !strings.Contains(stderr.String(), "bad token") {
		t.Fatalf("stderr = %q", stderr.String())
	}

	stderr.Reset()
	missing := filepath.Join(t.TempDir(), "missing")
	if code := run([]string{missing}, nil, &stdout, &stderr); code != exitFailure {
		t.Fatalf("missing file: exit %d", code)
	}
}

func TestCommandTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-t", writeProgram(t, "1002,4,3,4,33")}, nil, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit %d", code)
	}
	if stderr.String() != "   0: mul [4] 3 [4]\n   4: halt\n" {
		t.Fatalf("trace = %q", stderr.String())
	}
}
