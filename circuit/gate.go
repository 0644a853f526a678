//
// gate.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import "fmt"

// Kind identifies the operator a Gate computes.
type Kind uint32

// The gate kinds. Input has no operands; Not takes one; And, Or, and Xor
// take two.
const (
	Input Kind = iota
	Not
	And
	Or
	Xor
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "IN"
	case Not:
		return "NOT"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	default:
		return fmt.Sprintf("{Kind %d}", uint32(k))
	}
}

// NoGate is the sentinel gate index meaning "no such gate". It is
// returned by Add and every composer on failure, and propagates through
// chained composers without any caller needing to branch.
const NoGate = ^uint64(0)

// Gate is a single node of the shared gate DAG: either an INPUT leaf or a
// 1- or 2-input logic gate. Table is the function it computes over all
// 256 input assignments. For non-input gates, In1 (and In2, when present)
// index earlier gates: In1 < the gate's own index, and likewise In2,
// which keeps the DAG in strict topological order by construction.
type Gate struct {
	Kind  Kind
	Table TruthTable
	In1   uint64
	In2   uint64
}

func (g Gate) String() string {
	switch g.Kind {
	case Input:
		return "IN"
	case Not:
		return fmt.Sprintf("NOT %d", g.In1)
	default:
		return fmt.Sprintf("%s %d %d", g.Kind, g.In1, g.In2)
	}
}

// State is the shared, append-only gate network grown while synthesizing
// one S-box output bit at a time. Gates 0..7 are always the eight input
// leaves. Outputs[o] holds the gate index realizing output bit o, or
// NoGate if it has not been synthesized yet.
type State struct {
	Gates    []Gate
	NumGates uint64
	MaxGates uint64
	Outputs  [8]uint64
}

// NewState creates a State with the eight input leaves pre-populated and
// every output unassigned.
func NewState(maxGates uint64) *State {
	st := &State{
		Gates:    make([]Gate, 8, maxGates),
		NumGates: 8,
		MaxGates: maxGates,
	}
	for i := 0; i < 8; i++ {
		st.Gates[i] = Gate{
			Kind:  Input,
			Table: GenerateTarget(uint(i), false),
			In1:   NoGate,
			In2:   NoGate,
		}
	}
	for i := range st.Outputs {
		st.Outputs[i] = NoGate
	}
	return st
}

// Clone returns a deep copy of st. Mutations made through the returned
// State, including further gate additions, never affect st.
func (st *State) Clone() *State {
	cp := &State{
		Gates:    make([]Gate, len(st.Gates), cap(st.Gates)),
		NumGates: st.NumGates,
		MaxGates: st.MaxGates,
		Outputs:  st.Outputs,
	}
	copy(cp.Gates, st.Gates)
	return cp
}

// Add appends a gate with the given kind, table, and inputs, returning
// its index. It returns NoGate, leaving st unchanged, if either required
// input is NoGate or the gate budget (MaxGates) is already exhausted.
func (st *State) Add(kind Kind, table TruthTable, in1, in2 uint64) uint64 {
	if in1 == NoGate || (kind != Not && in2 == NoGate) {
		return NoGate
	}
	if st.NumGates >= st.MaxGates {
		return NoGate
	}
	st.Gates = append(st.Gates, Gate{Kind: kind, Table: table, In1: in1, In2: in2})
	idx := st.NumGates
	st.NumGates++
	return idx
}

// Not appends a NOT gate inverting a, or returns NoGate if a does.
func (st *State) Not(a uint64) uint64 {
	if a == NoGate {
		return NoGate
	}
	return st.Add(Not, st.Gates[a].Table.Not(), a, NoGate)
}

// And appends an AND gate over a and b.
func (st *State) And(a, b uint64) uint64 {
	if a == NoGate || b == NoGate {
		return NoGate
	}
	return st.Add(And, st.Gates[a].Table.And(st.Gates[b].Table), a, b)
}

// Or appends an OR gate over a and b.
func (st *State) Or(a, b uint64) uint64 {
	if a == NoGate || b == NoGate {
		return NoGate
	}
	return st.Add(Or, st.Gates[a].Table.Or(st.Gates[b].Table), a, b)
}

// Xor appends an XOR gate over a and b.
func (st *State) Xor(a, b uint64) uint64 {
	if a == NoGate || b == NoGate {
		return NoGate
	}
	return st.Add(Xor, st.Gates[a].Table.Xor(st.Gates[b].Table), a, b)
}

// Nand appends NOT(AND(a, b)).
func (st *State) Nand(a, b uint64) uint64 { return st.Not(st.And(a, b)) }

// Nor appends NOT(OR(a, b)).
func (st *State) Nor(a, b uint64) uint64 { return st.Not(st.Or(a, b)) }

// Xnor appends NOT(XOR(a, b)).
func (st *State) Xnor(a, b uint64) uint64 { return st.Not(st.Xor(a, b)) }

// OrNot appends OR(NOT(a), b). Only a is inverted.
func (st *State) OrNot(a, b uint64) uint64 { return st.Or(st.Not(a), b) }

// AndNot appends AND(NOT(a), b). Only a is inverted.
func (st *State) AndNot(a, b uint64) uint64 { return st.And(st.Not(a), b) }

// Or3 appends OR(OR(a, b), c).
func (st *State) Or3(a, b, c uint64) uint64 { return st.Or(st.Or(a, b), c) }

// And3 appends AND(AND(a, b), c).
func (st *State) And3(a, b, c uint64) uint64 { return st.And(st.And(a, b), c) }

// Xor3 appends XOR(XOR(a, b), c).
func (st *State) Xor3(a, b, c uint64) uint64 { return st.Xor(st.Xor(a, b), c) }

// AndOr appends OR(AND(a, b), c).
func (st *State) AndOr(a, b, c uint64) uint64 { return st.Or(st.And(a, b), c) }

// AndXor appends XOR(AND(a, b), c).
func (st *State) AndXor(a, b, c uint64) uint64 { return st.Xor(st.And(a, b), c) }

// OrAnd appends AND(OR(a, b), c).
func (st *State) OrAnd(a, b, c uint64) uint64 { return st.And(st.Or(a, b), c) }

// OrXor appends XOR(OR(a, b), c).
func (st *State) OrXor(a, b, c uint64) uint64 { return st.Xor(st.Or(a, b), c) }

// XorAnd appends AND(XOR(a, b), c).
func (st *State) XorAnd(a, b, c uint64) uint64 { return st.And(st.Xor(a, b), c) }

// XorOr appends OR(XOR(a, b), c).
func (st *State) XorOr(a, b, c uint64) uint64 { return st.Or(st.Xor(a, b), c) }

// replace overwrites st's fields with other's, used after phase 6 of
// CreateCircuit picks a winning multiplexer candidate.
func (st *State) replace(other *State) {
	st.Gates = other.Gates
	st.NumGates = other.NumGates
	st.MaxGates = other.MaxGates
	st.Outputs = other.Outputs
}
