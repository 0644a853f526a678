//
// report.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Report prints a gate-kind breakdown of st to w: one row per assigned
// output bit giving its gate index and the count of each gate kind
// reachable from it, plus a totals row for the whole shared state.
func Report(w io.Writer, st *State) {
	tab := tabulate.New(tabulate.Github)
	tab.Header("Output")
	tab.Header("Gate").SetAlign(tabulate.MR)
	tab.Header("IN").SetAlign(tabulate.MR)
	tab.Header("NOT").SetAlign(tabulate.MR)
	tab.Header("AND").SetAlign(tabulate.MR)
	tab.Header("OR").SetAlign(tabulate.MR)
	tab.Header("XOR").SetAlign(tabulate.MR)
	tab.Header("Total").SetAlign(tabulate.MR)

	for _, o := range st.AssignedOutputs() {
		counts := countKinds(st, st.Outputs[o])
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", o))
		row.Column(fmt.Sprintf("%d", st.Outputs[o]))
		row.Column(fmt.Sprintf("%d", counts[Input]))
		row.Column(fmt.Sprintf("%d", counts[Not]))
		row.Column(fmt.Sprintf("%d", counts[And]))
		row.Column(fmt.Sprintf("%d", counts[Or]))
		row.Column(fmt.Sprintf("%d", counts[Xor]))
		row.Column(fmt.Sprintf("%d", total(counts)))
	}

	row := tab.Row()
	row.Column("shared")
	row.Column(fmt.Sprintf("%d", st.NumGates))
	allCounts := countKindsAll(st)
	row.Column(fmt.Sprintf("%d", allCounts[Input]))
	row.Column(fmt.Sprintf("%d", allCounts[Not]))
	row.Column(fmt.Sprintf("%d", allCounts[And]))
	row.Column(fmt.Sprintf("%d", allCounts[Or]))
	row.Column(fmt.Sprintf("%d", allCounts[Xor]))
	row.Column(fmt.Sprintf("%d", total(allCounts)))

	tab.Print(w)
}

func total(counts map[Kind]int) int {
	return counts[Input] + counts[Not] + counts[And] + counts[Or] + counts[Xor]
}

// countKindsAll tallies the kind of every gate in the shared state.
func countKindsAll(st *State) map[Kind]int {
	counts := make(map[Kind]int)
	for _, g := range st.Gates {
		counts[g.Kind]++
	}
	return counts
}

// countKinds tallies the kind of every gate reachable, via In1/In2, from
// root (inclusive).
func countKinds(st *State, root uint64) map[Kind]int {
	counts := make(map[Kind]int)
	seen := make(map[uint64]bool)
	var visit func(idx uint64)
	visit = func(idx uint64) {
		if idx == NoGate || seen[idx] {
			return
		}
		seen[idx] = true
		g := st.Gates[idx]
		counts[g.Kind]++
		visit(g.In1)
		visit(g.In2)
	}
	visit(root)
	return counts
}
