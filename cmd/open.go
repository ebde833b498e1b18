package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tuannh982/hashdict/dict"
)

func newOpenCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Fill an open addressing hash map, then delete every multiple of 7",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var conf hashConfig
			if err := loadConfig(cmd, root.configFile, &conf); err != nil {
				return err
			}
			return runOpen(cmd.OutOrStdout(), conf)
		},
	}
	hashFlags(cmd)
	return cmd
}

func runOpen(out io.Writer, conf hashConfig) error {
	opts, err := conf.options()
	if err != nil {
		return err
	}
	m := dict.NewOpenAddressMap[int, int](opts...)
	if err = fill(m, conf.Keys); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"keys":     conf.Keys,
		"hash":     conf.Hash,
		"capacity": m.Capacity(),
	}).Info("open address map filled")
	fmt.Fprint(out, m.String())
	printOpenStats(out, m)
	deleted, err := deleteMultiples(m, conf.Keys, deleteStride)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "after deleting multiples of %d (%d keys):\n", deleteStride, deleted)
	fmt.Fprint(out, m.String())
	printOpenStats(out, m)
	return m.Validate()
}

func printOpenStats(out io.Writer, m *dict.OpenAddressMap[int, int]) {
	fmt.Fprintf(out, "size=%d capacity=%d tombstones=%d load=%.2f\n", m.Size(), m.Capacity(), m.Tombstones(), m.LoadFactor())
}
