// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ternary

import (
	"fmt"
	"io"
)

// Dump writes every allocated row of every table to w, one row per line,
// for debugging table layout and chaining.
func (t *TernaryTree[V]) Dump(w io.Writer) {
	for ti, tb := range t.tables {
		fmt.Fprintf(w, "table %d: %d/%d rows\n", ti, tb.used, len(tb.rows))
		for ri := 0; ri < tb.used; ri++ {
			r := &tb.rows[ri]
			ch := "-"
			if r.set {
				if r.ch >= ' ' && r.ch < 0x7f {
					ch = "'" + string(r.ch) + "'"
				} else {
					ch = fmt.Sprintf("%#02x", r.ch)
				}
			}
			fmt.Fprintf(w, "%4d [%s,%s,%s,%s]", ri, ch,
				r.next[branchLo], r.next[branchEq], r.next[branchHi])
			if e := &tb.entries[ri]; e.ok {
				fmt.Fprintf(w, " : %q=%v", e.key, e.value)
			}
			fmt.Fprintln(w)
		}
	}
}
