//
// marshal.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Save writes a byte-exact dump of st: MaxGates, NumGates, the eight
// Outputs (NoGate for unassigned), then exactly MaxGates gate records of
// {Kind uint32, Table [4]uint64, In1, In2 uint64}. Records past NumGates
// are written as padding (zero Kind and Table, NoGate inputs), so the file
// is always MaxGates gates long regardless of how many are actually in use.
func Save(w io.Writer, st *State) error {
	fields := []interface{}{st.MaxGates, st.NumGates}
	for _, o := range st.Outputs {
		fields = append(fields, o)
	}
	for _, f := range fields {
		if err := binary.Write(w, binary.BigEndian, f); err != nil {
			return fmt.Errorf("circuit: write header: %w", err)
		}
	}

	for i := uint64(0); i < st.MaxGates; i++ {
		g := Gate{In1: NoGate, In2: NoGate}
		if i < st.NumGates {
			g = st.Gates[i]
		}
		if err := binary.Write(w, binary.BigEndian, uint32(g.Kind)); err != nil {
			return fmt.Errorf("circuit: write gate %d kind: %w", i, err)
		}
		if err := binary.Write(w, binary.BigEndian, g.Table); err != nil {
			return fmt.Errorf("circuit: write gate %d table: %w", i, err)
		}
		if err := binary.Write(w, binary.BigEndian, g.In1); err != nil {
			return fmt.Errorf("circuit: write gate %d in1: %w", i, err)
		}
		if err := binary.Write(w, binary.BigEndian, g.In2); err != nil {
			return fmt.Errorf("circuit: write gate %d in2: %w", i, err)
		}
	}
	return nil
}

// Load reads a state previously written by Save. The returned State's
// Gates slice holds exactly NumGates entries (the MaxGates-NumGates
// padding records in the file are consumed but discarded), with spare
// capacity up to MaxGates so further synthesis can append in place.
func Load(r io.Reader) (*State, error) {
	st := &State{}
	if err := binary.Read(r, binary.BigEndian, &st.MaxGates); err != nil {
		return nil, fmt.Errorf("circuit: read max gates: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &st.NumGates); err != nil {
		return nil, fmt.Errorf("circuit: read num gates: %w", err)
	}
	for i := range st.Outputs {
		if err := binary.Read(r, binary.BigEndian, &st.Outputs[i]); err != nil {
			return nil, fmt.Errorf("circuit: read output %d: %w", i, err)
		}
	}

	st.Gates = make([]Gate, 0, st.MaxGates)
	for i := uint64(0); i < st.MaxGates; i++ {
		var kind uint32
		var g Gate
		if err := binary.Read(r, binary.BigEndian, &kind); err != nil {
			return nil, fmt.Errorf("circuit: read gate %d kind: %w", i, err)
		}
		g.Kind = Kind(kind)
		if err := binary.Read(r, binary.BigEndian, &g.Table); err != nil {
			return nil, fmt.Errorf("circuit: read gate %d table: %w", i, err)
		}
		if err := binary.Read(r, binary.BigEndian, &g.In1); err != nil {
			return nil, fmt.Errorf("circuit: read gate %d in1: %w", i, err)
		}
		if err := binary.Read(r, binary.BigEndian, &g.In2); err != nil {
			return nil, fmt.Errorf("circuit: read gate %d in2: %w", i, err)
		}
		if i < st.NumGates {
			st.Gates = append(st.Gates, g)
		}
	}
	return st, nil
}
