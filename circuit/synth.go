//
// synth.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import "fmt"

// maxSplitDepth bounds the number of nested Shannon splits a single
// synthesis branch may perform (phase 6 below).
const maxSplitDepth = 6

// Phase identifies which of CreateCircuit's six search tiers produced a
// gate.
type Phase int

// The six phases CreateCircuit tries, in order, for every gate it
// produces.
const (
	PhaseReuse Phase = iota + 1
	PhaseReuseInverse
	PhasePairCombine
	PhasePairCombineInvert
	PhaseTripleCombine
	PhaseShannonSplit
)

func (p Phase) String() string {
	switch p {
	case PhaseReuse:
		return "reuse"
	case PhaseReuseInverse:
		return "reuse-inverse"
	case PhasePairCombine:
		return "pair-combine"
	case PhasePairCombineInvert:
		return "pair-combine-invert"
	case PhaseTripleCombine:
		return "triple-combine"
	case PhaseShannonSplit:
		return "shannon-split"
	default:
		return fmt.Sprintf("{Phase %d}", int(p))
	}
}

// Trace, when non-nil, is invoked by CreateCircuit immediately before it
// returns a gate it found or built, reporting the phase that matched and
// the resulting gate index. It is never called on a NoGate result, and a
// recursive Shannon split (phase 6) reports every gate produced by its
// inner CreateCircuit calls (two per multiplexer candidate) as well as its
// own multiplexer gate.
type Trace func(phase Phase, gate uint64)

// CreateCircuit searches st for an existing gate whose table, restricted
// to the bits selected by mask, equals target; failing that, it appends
// new gates realizing target and returns the index of the last one. It
// either leaves st unchanged and returns the index of an existing gate, or
// grows st and returns the newly added gate that satisfies the masked
// target. It returns NoGate if no such gate can be built within st's
// remaining gate budget.
//
// usedBits lists, in the order chosen, the input bits already used as
// Shannon-split variables on the current recursion path (at most
// maxSplitDepth of them); it is never mutated by this call. trace may be
// nil.
func CreateCircuit(st *State, target, mask TruthTable, usedBits []int8, trace Trace) uint64 {
	// Phase 1: reuse an existing gate outright.
	for i := uint64(0); i < st.NumGates; i++ {
		if st.Gates[i].Table.EqMasked(target, mask) {
			if trace != nil {
				trace(PhaseReuse, i)
			}
			return i
		}
	}

	// Phase 2: reuse the inverse of an existing gate.
	for i := uint64(0); i < st.NumGates; i++ {
		if st.Gates[i].Table.Not().EqMasked(target, mask) {
			gate := st.Not(i)
			if trace != nil && gate != NoGate {
				trace(PhaseReuseInverse, gate)
			}
			return gate
		}
	}

	// Phase 3: combine a pair of existing gates with a single gate.
	mtarget := target.And(mask)
	for i := uint64(0); i < st.NumGates; i++ {
		ti := st.Gates[i].Table.And(mask)
		for k := i + 1; k < st.NumGates; k++ {
			tk := st.Gates[k].Table.And(mask)
			if ti.Or(tk).Eq(mtarget) {
				return tracedReturn(trace, PhasePairCombine, st.Or(i, k))
			}
			if ti.And(tk).Eq(mtarget) {
				return tracedReturn(trace, PhasePairCombine, st.And(i, k))
			}
			if ti.Xor(tk).Eq(mtarget) {
				return tracedReturn(trace, PhasePairCombine, st.Xor(i, k))
			}
		}
	}

	// Phase 4: combine a pair of existing gates with one inverting gate.
	for i := uint64(0); i < st.NumGates; i++ {
		ti := st.Gates[i].Table
		for k := i + 1; k < st.NumGates; k++ {
			tk := st.Gates[k].Table
			if ti.Or(tk).Not().EqMasked(target, mask) {
				return tracedReturn(trace, PhasePairCombineInvert, st.Nor(i, k))
			}
			if ti.And(tk).Not().EqMasked(target, mask) {
				return tracedReturn(trace, PhasePairCombineInvert, st.Nand(i, k))
			}
			if ti.Xor(tk).Not().EqMasked(target, mask) {
				return tracedReturn(trace, PhasePairCombineInvert, st.Xnor(i, k))
			}
			if ti.Not().Or(tk).EqMasked(target, mask) {
				return tracedReturn(trace, PhasePairCombineInvert, st.OrNot(i, k))
			}
			if tk.Not().Or(ti).EqMasked(target, mask) {
				return tracedReturn(trace, PhasePairCombineInvert, st.OrNot(k, i))
			}
			if ti.Not().And(tk).EqMasked(target, mask) {
				return tracedReturn(trace, PhasePairCombineInvert, st.AndNot(i, k))
			}
			if tk.Not().And(ti).EqMasked(target, mask) {
				return tracedReturn(trace, PhasePairCombineInvert, st.AndNot(k, i))
			}
		}
	}

	// Phase 5: combine three existing gates with two gates.
	for i := uint64(0); i < st.NumGates; i++ {
		ti := st.Gates[i].Table.And(mask)
		for k := i + 1; k < st.NumGates; k++ {
			tk := st.Gates[k].Table.And(mask)
			iandk := ti.And(tk)
			iork := ti.Or(tk)
			ixork := ti.Xor(tk)
			for m := k + 1; m < st.NumGates; m++ {
				tm := st.Gates[m].Table.And(mask)

				if iandk.And(tm).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.And3(i, k, m))
				}
				if iandk.Or(tm).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.AndOr(i, k, m))
				}
				if iandk.Xor(tm).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.AndXor(i, k, m))
				}
				if iork.Or(tm).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.Or3(i, k, m))
				}
				if iork.And(tm).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.OrAnd(i, k, m))
				}
				if iork.Xor(tm).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.OrXor(i, k, m))
				}
				if ixork.Xor(tm).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.Xor3(i, k, m))
				}
				if ixork.Or(tm).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.XorOr(i, k, m))
				}
				if ixork.And(tm).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.XorAnd(i, k, m))
				}

				iandm := ti.And(tm)
				if iandm.Or(tk).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.AndOr(i, m, k))
				}
				if iandm.Xor(tk).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.AndXor(i, m, k))
				}
				kandm := tk.And(tm)
				if kandm.Or(ti).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.AndOr(k, m, i))
				}
				if kandm.Xor(ti).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.AndXor(k, m, i))
				}

				ixorm := ti.Xor(tm)
				if ixorm.Or(tk).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.XorOr(i, m, k))
				}
				if ixorm.And(tk).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.XorAnd(i, m, k))
				}
				kxorm := tk.Xor(tm)
				if kxorm.Or(ti).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.XorOr(k, m, i))
				}
				if kxorm.And(ti).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.XorAnd(k, m, i))
				}

				iorm := ti.Or(tm)
				if iorm.And(tk).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.OrAnd(i, m, k))
				}
				if iorm.Xor(tk).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.OrXor(i, m, k))
				}
				korm := tk.Or(tm)
				if korm.And(ti).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.OrAnd(k, m, i))
				}
				if korm.Xor(ti).Eq(mtarget) {
					return tracedReturn(trace, PhaseTripleCombine, st.OrXor(k, m, i))
				}
			}
		}
	}

	// Phase 6: Shannon split on an as-yet-unused input bit, building an
	// AND- or OR-multiplexer from the two recursively synthesized halves.
	return shannonSplit(st, target, mask, usedBits, trace)
}

// tracedReturn reports gate under phase to trace, if non-nil, and returns
// it unchanged. A NoGate result, from a composer that ran out of budget,
// is returned without being reported.
func tracedReturn(trace Trace, phase Phase, gate uint64) uint64 {
	if trace != nil && gate != NoGate {
		trace(phase, gate)
	}
	return gate
}

func usedBit(usedBits []int8, bit int8) bool {
	for _, b := range usedBits {
		if b == bit {
			return true
		}
	}
	return false
}

func shannonSplit(st *State, target, mask TruthTable, usedBits []int8, trace Trace) uint64 {
	if len(usedBits) >= maxSplitDepth {
		return NoGate
	}

	var best *State
	var bestGate uint64 = NoGate

	for b := 0; b < 8; b++ {
		if usedBit(usedBits, int8(b)) {
			continue
		}
		nextUsed := make([]int8, len(usedBits), len(usedBits)+1)
		copy(nextUsed, usedBits)
		nextUsed = append(nextUsed, int8(b))

		fsel := st.Gates[b].Table

		// AND-multiplexer: f = fb XOR (fc AND bit), where fb matches target
		// where bit is 0 and fc matches fb XOR target where bit is 1.
		stAnd := st.Clone()
		fb := CreateCircuit(stAnd, target.And(fsel.Not()), mask.And(fsel.Not()), nextUsed, trace)
		muxAnd := NoGate
		if fb != NoGate {
			fc := CreateCircuit(stAnd, stAnd.Gates[fb].Table.Xor(target), mask.And(fsel), nextUsed, trace)
			andg := stAnd.And(fc, uint64(b))
			muxAnd = stAnd.Xor(fb, andg)
		}

		// OR-multiplexer: f = fd XOR (fe OR bit), where fd matches NOT target
		// where bit is 1 and fe matches fd XOR target where bit is 0.
		stOr := st.Clone()
		fd := CreateCircuit(stOr, target.Not().And(fsel), mask.And(fsel), nextUsed, trace)
		muxOr := NoGate
		if fd != NoGate {
			fe := CreateCircuit(stOr, stOr.Gates[fd].Table.Xor(target), mask.And(fsel.Not()), nextUsed, trace)
			org := stOr.Or(fe, uint64(b))
			muxOr = stOr.Xor(fd, org)
		}

		if muxAnd == NoGate && muxOr == NoGate {
			continue
		}

		var cand *State
		var candGate uint64
		if muxAnd != NoGate && (muxOr == NoGate || stAnd.NumGates <= stOr.NumGates) {
			cand, candGate = stAnd, muxAnd
		} else {
			cand, candGate = stOr, muxOr
		}
		if !cand.Gates[candGate].Table.EqMasked(target, mask) {
			panic(fmt.Sprintf("shannon split: bit %d candidate gate %d does not satisfy masked target", b, candGate))
		}

		if best == nil || cand.NumGates < best.NumGates {
			best, bestGate = cand, candGate
		}
	}

	if best == nil {
		return NoGate
	}
	st.replace(best)
	if trace != nil {
		trace(PhaseShannonSplit, bestGate)
	}
	return bestGate
}
