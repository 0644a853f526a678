//
// main.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/ridenting/sboxgates/circuit"
)

func main() {
	dot := flag.Bool("dot", false, "print the loaded state as a Graphviz digraph and exit")
	stats := flag.Bool("stats", false, "print a gate-count report for the loaded state and exit")
	verbose := flag.Bool("v", false, "log the output of each synthesized bit as it completes")
	flag.Parse()

	args := flag.Args()

	switch {
	case len(args) == 0 && !*dot && !*stats:
		run(circuit.NewState(circuit.MaxGates), *verbose)

	case len(args) == 1 && !*dot && !*stats:
		st := load(args[0])
		st.MaxGates = circuit.MaxGates
		log.Printf("loaded state from %s", args[0])
		run(st, *verbose)

	case len(args) == 1 && *dot && !*stats:
		st := load(args[0])
		if err := circuit.Dot(os.Stdout, st); err != nil {
			log.Fatalf("writing dot output: %v", err)
		}

	case len(args) == 1 && *stats && !*dot:
		st := load(args[0])
		circuit.Report(os.Stdout, st)

	default:
		fmt.Fprintln(os.Stderr, "usage: sboxgates [file] | -dot file | -stats file")
		os.Exit(1)
	}
}

func load(name string) *circuit.State {
	f, err := os.Open(name)
	if err != nil {
		log.Fatalf("opening %s: %v", name, err)
	}
	defer f.Close()

	st, err := circuit.Load(f)
	if err != nil {
		log.Fatalf("loading %s: %v", name, err)
	}
	return st
}

func run(st *circuit.State, verbose bool) {
	log.Printf("%d processors online", runtime.NumCPU())

	var trace circuit.Trace
	if verbose {
		trace = func(phase circuit.Phase, gate uint64) {
			log.Printf("phase %s produced gate %d", phase, gate)
		}
	}

	circuit.Synthesize(st, trace, func(output int) {
		log.Printf("skipping output %d", output)
	}, func(st *circuit.State, output int) {
		if verbose {
			log.Printf("synthesized output %d with gate %d (%d gates total)",
				output, st.Outputs[output], st.NumGates)
		}
		save(st)
	})

	for o := range 8 {
		if st.Outputs[o] == circuit.NoGate {
			log.Printf("no solution for output %d", o)
		}
	}

	circuit.Report(os.Stdout, st)
}

func save(st *circuit.State) {
	outs := st.AssignedOutputs()
	var name string
	for _, o := range outs {
		name += fmt.Sprintf("%d", o)
	}
	fname := fmt.Sprintf("%d-%03d-%s.state", len(outs), st.NumGates-7, name)

	f, err := os.Create(fname)
	if err != nil {
		log.Printf("saving %s: %v", fname, err)
		return
	}
	defer f.Close()

	if err := circuit.Save(f, st); err != nil {
		log.Printf("saving %s: %v", fname, err)
	}
}
