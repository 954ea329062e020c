package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/terinjokes/intcode/intcode"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitBlocked = 2
)

type options struct {
	inputs   []int
	noun     int
	verb     int
	sentinel bool
	trace    bool
	disasm   bool
	memory   bool
}

func parseFlags(args []string, stderr io.Writer) (*options, string, error) {
	var opts options

	fs := pflag.NewFlagSet("intcode", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: intcode [flags] program")
		fs.PrintDefaults()
	}
	fs.IntSliceVarP(&opts.inputs, "input", "i", nil, "input values, consumed in order")
	fs.IntVar(&opts.noun, "noun", -1, "value poked into address 1 before running")
	fs.IntVar(&opts.verb, "verb", -1, "value poked into address 2 before running")
	fs.BoolVar(&opts.sentinel, "sentinel", false, "read -1 instead of suspending when input runs out")
	fs.BoolVarP(&opts.trace, "trace", "t", false, "print each instruction to stderr as it executes")
	fs.BoolVarP(&opts.disasm, "disasm", "d", false, "print a disassembly listing instead of running")
	fs.BoolVarP(&opts.memory, "memory", "m", false, "print final memory after running")

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, "", errors.New("wrong number of arguments")
	}
	return &opts, fs.Arg(0), nil
}

func readProgram(path string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("could not read program: %w", err)
	}
	return string(b), nil
}

func join(vals []int) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	opts, path, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		logger.Print(err)
		return exitFailure
	}

	text, err := readProgram(path, stdin)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}

	program, err := intcode.ParseProgram(text)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}

	if opts.disasm {
		for _, ins := range intcode.Listing(program) {
			fmt.Fprintf(stdout, "%4d: %s\n", ins.Addr, ins)
		}
		return exitOK
	}

	var mopts []intcode.Option
	if opts.sentinel {
		mopts = append(mopts, intcode.WithExhaustion(intcode.YieldSentinel))
	}
	if opts.trace {
		mopts = append(mopts, intcode.WithTrace(stderr))
	}
	m := intcode.New(program, mopts...)

	for addr, v := range map[int]int{1: opts.noun, 2: opts.verb} {
		if v < 0 {
			continue
		}
		if err := m.Poke(addr, v); err != nil {
			logger.Print(err)
			return exitFailure
		}
	}

	status, err := m.Run(intcode.Queue(opts.inputs...))

	if out := m.Drain(); len(out) > 0 {
		fmt.Fprintln(stdout, join(out))
	}
	if opts.memory {
		fmt.Fprintln(stdout, join(m.Memory()))
	}

	switch status {
	case intcode.Halted:
		return exitOK
	case intcode.NeedsInput:
		logger.Printf("program blocked on input at %d", m.IP())
		return exitBlocked
	default:
		logger.Print(err)
		return exitFailure
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
