//
// dot_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bytes"
	"strings"
	"testing"
)

func TestDotContainsGatesAndOutputs(t *testing.T) {
	st := NewState(MaxGates)
	CreateCircuit(st, Target(0), AllOnes(), nil, nil)
	st.Outputs[0] = st.NumGates - 1

	var buf bytes.Buffer
	if err := Dot(&buf, st); err != nil {
		t.Fatalf("Dot: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "digraph sbox {\n") {
		t.Errorf("missing digraph header: %q", out[:min(40, len(out))])
	}
	if !strings.Contains(out, "IN 0") {
		t.Error("missing input leaf node label")
	}
	if !strings.Contains(out, "-> out0;") {
		t.Error("missing edge to assigned output 0")
	}
}
