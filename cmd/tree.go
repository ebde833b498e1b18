package cmd

import (
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tuannh982/hashdict/dict"
)

type treeConfig struct {
	Keys   []int `mapstructure:"keys"`
	Delete []int `mapstructure:"delete"`
}

func newTreeCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Build an ordered map and print its traversals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var conf treeConfig
			if err := loadConfig(cmd, root.configFile, &conf); err != nil {
				return err
			}
			return runTree(cmd.OutOrStdout(), conf)
		},
	}
	cmd.Flags().IntSlice("keys", []int{2, 3, 4, 5, 7, 1, 6, -2, -1}, "Keys to insert, in order")
	cmd.Flags().IntSlice("delete", []int{2}, "Keys to delete after printing")
	return cmd
}

func runTree(out io.Writer, conf treeConfig) error {
	m := dict.NewOrderedMap[int, string]()
	for _, k := range conf.Keys {
		if err := m.Set(k, fmt.Sprintf("v%d", k)); err != nil {
			return errors.Wrapf(err, "failed to set %d", k)
		}
	}
	fmt.Fprintf(out, "size=%d height=%d\n", m.Size(), m.Height())
	fmt.Fprintf(out, "inorder=%v\n", keys(m.Inorder()))
	fmt.Fprintf(out, "preorder=%v\n", keys(m.Preorder()))
	fmt.Fprintf(out, "postorder=%v\n", keys(m.Postorder()))
	fmt.Fprintf(out, "levelorder=%v\n", keys(m.LevelOrder()))
	for _, k := range conf.Delete {
		if err := m.Delete(k); err != nil {
			return errors.Wrapf(err, "failed to delete %d", k)
		}
		fmt.Fprintf(out, "after deleting %d: size=%d inorder=%v\n", k, m.Size(), keys(m.Items()))
	}
	return m.Validate()
}

func keys[K, V any](seq iter.Seq2[K, V]) []K {
	arr := make([]K, 0)
	for k := range seq {
		arr = append(arr, k)
	}
	return arr
}
