package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tuannh982/hashdict/dict"
)

func newChainedCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chained",
		Short: "Fill a chained hash map, then delete every multiple of 7",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var conf hashConfig
			if err := loadConfig(cmd, root.configFile, &conf); err != nil {
				return err
			}
			return runChained(cmd.OutOrStdout(), conf)
		},
	}
	hashFlags(cmd)
	return cmd
}

func runChained(out io.Writer, conf hashConfig) error {
	opts, err := conf.options()
	if err != nil {
		return err
	}
	m := dict.NewChainedMap[int, int](opts...)
	if err = fill(m, conf.Keys); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"keys":    conf.Keys,
		"hash":    conf.Hash,
		"buckets": m.BucketCount(),
	}).Info("chained map filled")
	fmt.Fprint(out, m.String())
	fmt.Fprintf(out, "size=%d buckets=%d load=%.2f\n", m.Size(), m.BucketCount(), m.LoadFactor())
	deleted, err := deleteMultiples(m, conf.Keys, deleteStride)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "after deleting multiples of %d (%d keys):\n", deleteStride, deleted)
	fmt.Fprint(out, m.String())
	fmt.Fprintf(out, "size=%d buckets=%d load=%.2f\n", m.Size(), m.BucketCount(), m.LoadFactor())
	return m.Validate()
}
