//
// driver.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import "fmt"

// Target returns the truth table for S-box output bit o (0..7), i.e.
// GenerateTarget(uint(o), true).
func Target(o int) TruthTable {
	return GenerateTarget(uint(o), true)
}

// Synthesize synthesizes every output bit of st that is still unassigned,
// in ascending order. After each successful output it tightens
// st.MaxGates to the gate count just achieved, so later outputs are held
// to a budget no larger than the best one found so far.
//
// trace, if non-nil, is forwarded to CreateCircuit for every output and
// reports which phase produced each gate. onSkip, if non-nil, is called
// with an output already carrying an assigned gate, before it is passed
// over, matching the original driver's progress narration. onSuccess, if
// non-nil, is called with the updated state immediately after each output
// is assigned (persistence concerns are the CLI's, not the core's, but
// the callback lets a caller save or report incrementally).
//
// It returns the list of output bits synthesized during this call, in
// ascending order. Outputs that fail to synthesize within budget are
// skipped, not reported as an error: NoSolution is not fatal to the run.
func Synthesize(st *State, trace Trace, onSkip func(output int), onSuccess func(st *State, output int)) []int {
	var done []int
	for o := 0; o < 8; o++ {
		if st.Outputs[o] != NoGate {
			if onSkip != nil {
				onSkip(o)
			}
			continue
		}
		target := Target(o)
		cand := st.Clone()
		gate := CreateCircuit(cand, target, AllOnes(), nil, trace)
		if gate == NoGate {
			continue
		}
		if !cand.Gates[gate].Table.Eq(target) {
			panic(fmt.Sprintf("output %d: synthesized gate fails full equality check", o))
		}
		cand.Outputs[o] = gate
		if onSuccess != nil {
			onSuccess(cand, o)
		}
		cand.MaxGates = cand.NumGates
		st.replace(cand)
		done = append(done, o)
	}
	return done
}

// AssignedOutputs returns the output bits that already have a gate
// assigned, in ascending order.
func (st *State) AssignedOutputs() []int {
	var outs []int
	for o := 0; o < 8; o++ {
		if st.Outputs[o] != NoGate {
			outs = append(outs, o)
		}
	}
	return outs
}
