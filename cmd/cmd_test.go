package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestChainedCmd(t *testing.T) {
	out, err := execute(t, "chained", "--hash", "modulo", "--keys", "100")
	require.Nil(t, err)
	require.Contains(t, out, "size=100 buckets=")
	require.Contains(t, out, "after deleting multiples of 7 (15 keys):")
	require.Contains(t, out, "size=85 buckets=")
}

func TestOpenCmd(t *testing.T) {
	out, err := execute(t, "open", "--hash", "constant", "--bin", "5", "--keys", "12", "--rehash")
	require.Nil(t, err)
	require.Contains(t, out, "size=12 capacity=20 tombstones=0")
	require.Contains(t, out, "size=10 capacity=20 tombstones=2")
}

func TestOpenCmdTableFull(t *testing.T) {
	_, err := execute(t, "open", "--capacity", "3", "--max-load", "1", "--grow-step", "0", "--keys", "4")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "table full")
}

func TestTreeCmd(t *testing.T) {
	out, err := execute(t, "tree")
	require.Nil(t, err)
	require.Contains(t, out, "size=9 height=6")
	require.Contains(t, out, "inorder=[-2 -1 1 2 3 4 5 6 7]")
	require.Contains(t, out, "preorder=[2 1 -2 -1 3 4 5 7 6]")
	require.Contains(t, out, "after deleting 2: size=8 inorder=[-2 -1 1 3 4 5 6 7]")
}

func TestTreeCmdMissingKey(t *testing.T) {
	_, err := execute(t, "tree", "--keys", "1,2,3", "--delete", "4")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "key not found")
}

func TestConfigFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(name, []byte("capacity: 20\nmax-load: 0.5\nkeys: 0\n"), 0o600))
	out, err := execute(t, "--conf", name, "open")
	require.Nil(t, err)
	require.Contains(t, out, "size=0 capacity=20 tombstones=0")

	// flags win over the file
	out, err = execute(t, "--conf", name, "open", "--capacity", "30")
	require.Nil(t, err)
	require.Contains(t, out, "size=0 capacity=30 tombstones=0")
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("HASHDICT_HASH", "bogus")
	_, err := execute(t, "chained")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), `unknown hash function "bogus"`)
}

func TestConfigValidation(t *testing.T) {
	_, err := execute(t, "chained", "--max-load", "2")
	require.NotNil(t, err)
	_, err = execute(t, "open", "--hash", "modulo", "--modulus", "0")
	require.NotNil(t, err)
}

func TestDemoCmd(t *testing.T) {
	out, err := execute(t, "demo")
	require.Nil(t, err)
	require.Contains(t, out, "List:45->40->35->30->25->20->15->10->5->0")
	require.Contains(t, out, "remove 115: false")
	require.Contains(t, out, "List:45->40->35->30->20->15->10->5->0")
	require.Contains(t, out, "--- tree ---")
}

func TestTreeCmdRepeatedKeys(t *testing.T) {
	out, err := execute(t, "tree", "--keys", "5,3,5,8,3", "--delete", "5")
	require.Nil(t, err)
	require.Contains(t, out, "size=3 height=2")
	require.Contains(t, out, "preorder=[5 3 8]")
	require.Contains(t, out, "after deleting 5: size=2 inorder=[3 8]")
}
