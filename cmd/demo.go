package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tuannh982/hashdict/dict"
	"github.com/tuannh982/hashdict/utils/collections"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every scenario with its stock configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func defaultHashConfig() hashConfig {
	return hashConfig{
		Capacity: dict.DefaultCapacity,
		MaxLoad:  dict.DefaultMaxLoadFactor,
		Hash:     "modulo",
		Modulus:  10,
		Keys:     100,
		GrowStep: dict.DefaultGrowStep,
	}
}

func runDemo(out io.Writer) error {
	fmt.Fprintln(out, "--- linked list ---")
	l := collections.NewLinkedList[int]()
	for i := 0; i < 50; i += 5 {
		l.Prepend(i)
	}
	fmt.Fprintln(out, l)
	fmt.Fprintf(out, "remove 115: %t\n", l.Remove(115))
	fmt.Fprintf(out, "remove 25: %t\n", l.Remove(25))
	fmt.Fprintln(out, l)

	fmt.Fprintln(out, "--- open addressing, constant hash ---")
	terrible := defaultHashConfig()
	terrible.Hash = "constant"
	terrible.Bin = 5
	terrible.Keys = 12
	if err := runOpen(out, terrible); err != nil {
		return err
	}

	fmt.Fprintln(out, "--- open addressing ---")
	if err := runOpen(out, defaultHashConfig()); err != nil {
		return err
	}

	fmt.Fprintln(out, "--- chained ---")
	if err := runChained(out, defaultHashConfig()); err != nil {
		return err
	}

	fmt.Fprintln(out, "--- tree ---")
	return runTree(out, treeConfig{
		Keys:   []int{2, 3, 4, 5, 7, 1, 6, -2, -1},
		Delete: []int{2},
	})
}
