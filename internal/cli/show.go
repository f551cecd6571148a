// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/sentinel"
)

// capacities lists the array types the tool is built with.
// Capacity is part of the array type, so each one is a separate instantiation.
var capacities = []int{4, 16, 64, 256}

func supportedCapacities() string {
	parts := make([]string, len(capacities))
	for i, c := range capacities {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ", ")
}

type showOptions struct {
	values   []int64
	file     string
	at       []int
	sentinel int
	raw      bool
	sep      string
}

func newShowCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [values...]",
		Short: "Build an array and print its length-aware views",
		Example: `  sentinel show 42 1337 --capacity 4 --at 0,1,2
  sentinel show --file offsets.yaml --raw
  sentinel show 1 2 3 4 --capacity 4 --sentinel 2`,
		RunE: a.runShow,
	}
	f := cmd.Flags()
	f.StringP("file", "f", "", "YAML or JSON sequence to load instead of arguments")
	f.IntSlice("at", nil, "positions to read with checked access")
	f.Int("sentinel", -1, "set the live length after loading")
	f.Bool("raw", false, "also print every physical slot")
	return cmd
}

func readShowOptions(f *pflag.FlagSet, args []string) (showOptions, error) {
	var opts showOptions
	var err error
	if opts.file, err = f.GetString("file"); err != nil {
		return opts, err
	}
	if opts.at, err = f.GetIntSlice("at"); err != nil {
		return opts, err
	}
	if opts.sentinel, err = f.GetInt("sentinel"); err != nil {
		return opts, err
	}
	if opts.raw, err = f.GetBool("raw"); err != nil {
		return opts, err
	}

	if opts.file != "" && len(args) > 0 {
		return opts, errors.New("values and --file are mutually exclusive")
	}
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("value %q: %w", arg, err)
		}
		opts.values = append(opts.values, v)
	}
	return opts, nil
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	opts, err := readShowOptions(cmd.Flags(), args)
	if err != nil {
		return err
	}
	opts.sep = a.v.GetString("sep")

	switch capacity := a.v.GetInt("capacity"); capacity {
	case 4:
		return show[[4]int64](a, opts)
	case 16:
		return show[[16]int64](a, opts)
	case 64:
		return show[[64]int64](a, opts)
	case 256:
		return show[[256]int64](a, opts)
	default:
		return fmt.Errorf("unsupported capacity %d (supported: %s)", capacity, supportedCapacities())
	}
}

func show[S sentinel.Storage[int64]](a *app, opts showOptions) error {
	arr, err := load[S](opts)
	if err != nil {
		return err
	}
	if opts.sentinel >= 0 {
		if opts.sentinel > arr.Cap() {
			return fmt.Errorf("--sentinel %d exceeds capacity %d", opts.sentinel, arr.Cap())
		}
		arr.SetSentinel(opts.sentinel)
	}
	a.log.Debug("array ready", "size", arr.Len(), "capacity", arr.Cap(), "file", opts.file)

	w := a.out
	fmt.Fprintf(w, "size: %d\n", arr.Len())
	fmt.Fprintf(w, "capacity: %d\n", arr.Cap())
	fmt.Fprintf(w, "forward: %s\n", joinValues(arr.Values(), opts.sep))
	fmt.Fprintf(w, "backward: %s\n", joinIndexed(arr.Backward(), opts.sep))
	for _, pos := range opts.at {
		v, err := arr.At(pos)
		if err != nil {
			a.log.Info("checked access failed", "pos", pos, "size", arr.Len())
			fmt.Fprintf(w, "at(%d): error: %v\n", pos, err)
			continue
		}
		fmt.Fprintf(w, "at(%d): %d\n", pos, v)
	}
	if opts.raw {
		writeRaw(w, &arr)
	}
	return nil
}

func load[S sentinel.Storage[int64]](opts showOptions) (sentinel.Array[S, int64], error) {
	var arr sentinel.Array[S, int64]
	if opts.file == "" {
		// Assign panics on overflow; arguments are user input.
		if len(opts.values) > arr.Cap() {
			return arr, fmt.Errorf("%w: %d values, capacity %d", sentinel.ErrCapacity, len(opts.values), arr.Cap())
		}
		arr.Assign(opts.values...)
		return arr, nil
	}

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return arr, fmt.Errorf("read %s: %w", opts.file, err)
	}
	switch strings.ToLower(filepath.Ext(opts.file)) {
	case ".json":
		err = json.Unmarshal(data, &arr)
	default:
		err = yaml.Unmarshal(data, &arr)
	}
	if err != nil {
		return arr, fmt.Errorf("decode %s: %w", opts.file, err)
	}
	return arr, nil
}

func writeRaw[S sentinel.Storage[int64]](w io.Writer, arr *sentinel.Array[S, int64]) {
	for i := range arr.Cap() {
		mark := ""
		if i >= arr.Len() {
			mark = " (stale)"
		}
		fmt.Fprintf(w, "raw[%d]: %d%s\n", i, arr.Index(i), mark)
	}
}

func joinValues(seq iter.Seq[int64], sep string) string {
	var b strings.Builder
	for v := range seq {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

func joinIndexed(seq iter.Seq2[int, int64], sep string) string {
	var b strings.Builder
	for _, v := range seq {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}
