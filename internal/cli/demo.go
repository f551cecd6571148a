// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"code.hybscloud.com/sentinel"
)

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through partial construction, range construction and reassignment",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a.runDemo()
			return nil
		},
	}
}

func (a *app) runDemo() {
	w := a.out
	sep := a.v.GetString("sep")

	partial := sentinel.New[[4]int64, int64](42, 1337)
	fmt.Fprintln(w, "capacity 4 from {42, 1337}")
	fmt.Fprintf(w, "  size: %d\n", partial.Len())
	fmt.Fprintf(w, "  forward: %s\n", joinValues(partial.Values(), sep))
	for pos := range 3 {
		if v, err := partial.At(pos); err != nil {
			fmt.Fprintf(w, "  at(%d): error: %v\n", pos, err)
		} else {
			fmt.Fprintf(w, "  at(%d): %d\n", pos, v)
		}
	}
	for i := partial.Len(); i < partial.Cap(); i++ {
		fmt.Fprintf(w, "  raw[%d]: %d\n", i, partial.Index(i))
	}

	ranged := sentinel.FromSlice[[10]int64]([]int64{100, 200, 300})
	fmt.Fprintln(w, "capacity 10 from range {100, 200, 300}")
	fmt.Fprintf(w, "  size: %d\n", ranged.Len())
	fmt.Fprintf(w, "  forward: %s\n", joinValues(ranged.Values(), sep))

	var reassigned sentinel.Array[[4]int64, int64]
	reassigned.Assign(1, 2, 3, 4)
	reassigned.Assign(5)
	fmt.Fprintln(w, "capacity 4 assigned {1, 2, 3, 4} then {5}")
	fmt.Fprintf(w, "  size: %d\n", reassigned.Len())
	fmt.Fprintf(w, "  forward: %s\n", joinValues(reassigned.Values(), sep))
	fmt.Fprintf(w, "  backward: %s\n", joinIndexed(reassigned.Backward(), sep))

	a.log.Debug("demo finished")
}
