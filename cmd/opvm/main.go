// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/ezrec/opvm/code"
	"github.com/ezrec/opvm/config"
	"github.com/ezrec/opvm/machine"
	"github.com/ezrec/opvm/script"
)

// The demonstration program: (3 + 4) - 5
var demo = machine.Program{
	machine.Push(3),
	machine.Push(4),
	machine.Add(),
	machine.Push(5),
	machine.Subtract(),
}

// dump writes the opcode registry.
func dump(w io.Writer) {
	for op, def := range code.Definitions() {
		fmt.Fprintf(w, "0x%02x %-16s widths=%v\n", byte(op), def.Name, def.OperandWidths)
	}
}

// verbosity reports whether either the flag or the configuration asks for verbose output.
func verbosity(set bool, cfg *config.Config) bool {
	return set || cfg.Verbose
}

func main() {
	var conf string
	var source string
	var registry bool
	var verbose bool

	flag.StringVar(&conf, "c", "", ".toml configuration file")
	flag.StringVar(&source, "s", "", ".star script to run")
	flag.BoolVar(&registry, "d", false, "Dump the opcode registry")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg, err := config.Load(conf)
	if err != nil {
		log.Fatal(err)
	}

	verbose = verbosity(verbose, cfg)

	logger := zap.NewNop()
	if verbose {
		logger = zap.Must(zap.NewDevelopment())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if registry {
		dump(os.Stdout)
	}

	if len(source) == 0 {
		source = cfg.Script
	}

	err = run(cfg, source, verbose, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

// run executes the script at source, or the demonstration program if
// source is empty, and writes the result to out. With verbose set the
// machine state is written to diag.
func run(cfg *config.Config, source string, verbose bool, out io.Writer, diag io.Writer) (err error) {
	prog := demo
	if len(source) != 0 {
		ld := &script.Loader{}
		scr, err := ld.Load(source, nil)
		if err != nil {
			return fmt.Errorf("%v: %w", source, err)
		}
		for _, ins := range scr.Instructions {
			fmt.Fprintf(out, "% x\n", []byte(ins))
		}
		prog = scr.Program
	}

	opts, err := cfg.MachineOpts()
	if err != nil {
		return
	}

	vm := machine.New(opts...)
	result, ok, err := vm.Run(prog)
	if err != nil {
		return
	}

	if verbose {
		fmt.Fprint(diag, vm.String())
	}

	if ok {
		fmt.Fprintf(out, "result: %v\n", result)
	} else {
		fmt.Fprintln(out, "result: none")
	}

	return
}
