package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naggynab/DSA-Project/btree"
)

func newTestCli(t *testing.T, input string) (*Cli, *btree.Tree[int], *bytes.Buffer) {
	t.Helper()
	tree, err := btree.New[int](2, &btree.Options{Log: t.Logf})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	scanner := bufio.NewScanner(strings.NewReader(input))
	return NewCli(scanner, out, tree, true), tree, out
}

func TestCli_InsertStepByStep(t *testing.T) {
	c, tree, out := newTestCli(t, "insert 10 20\nINSERT 30 40\nkeys\nexit\n")
	c.Start()

	assert.Equal(t, []int{10, 20, 30, 40}, tree.Keys())
	s := out.String()
	assert.Contains(t, s, "Available Commands")
	assert.Equal(t, 4, strings.Count(s, "btree(t=2"))
	assert.Contains(t, s, "[20]\n├── [10]\n└── [30 | 40]")
	assert.Contains(t, s, "10,20,30,40")
}

func TestCli_Bulk(t *testing.T) {
	c, tree, out := newTestCli(t, "bulk 5, 1,4 ,2,3\n")
	c.Start()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.Keys())
	assert.Equal(t, 1, strings.Count(out.String(), "btree(t=2"))
	assert.NoError(t, tree.Check())
}

func TestCli_BulkRejectsBadKey(t *testing.T) {
	c, tree, _ := newTestCli(t, "")

	err := c.Bulk("1,2,x,4")
	assert.ErrorIs(t, err, btree.ErrInvalidKey)
	assert.Equal(t, 0, tree.Len())
}

func TestCli_InsertSkipsBadKey(t *testing.T) {
	c, tree, out := newTestCli(t, "insert 1 abc 2\n")
	c.Start()

	assert.Equal(t, []int{1, 2}, tree.Keys())
	assert.Contains(t, out.String(), `Error: "abc" is not an integer`)
}

func TestCli_Random(t *testing.T) {
	c, tree, _ := newTestCli(t, "random 25\nrandom -1\n")
	c.Start()

	assert.Equal(t, 25, tree.Len())
	assert.NoError(t, tree.Check())
}

func TestCli_Stats(t *testing.T) {
	c, _, out := newTestCli(t, "")
	require.NoError(t, c.Bulk("1,2,3,4"))

	c.printStats()
	var stats btree.Stats
	require.NoError(t, json.Unmarshal(out.Bytes(), &stats))
	assert.Equal(t, btree.Stats{
		Degree:     2,
		Height:     2,
		Keys:       4,
		Nodes:      3,
		Leaves:     2,
		Splits:     1,
		RootSplits: 1,
	}, stats)
}

func TestCli_CheckResetLevels(t *testing.T) {
	c, tree, out := newTestCli(t, "bulk 1,2,3,4\nlevels\ncheck\nreset\nkeys\n")
	c.Start()

	s := out.String()
	assert.Contains(t, s, "0: [2]\n1: [1] [3 | 4]")
	assert.Contains(t, s, "OK\n")
	assert.Contains(t, s, "btree(t=2 height=1 keys=0)")
	assert.Equal(t, 0, tree.Len())
}

func TestCli_ExitStopsSession(t *testing.T) {
	c, tree, out := newTestCli(t, "exit\ninsert 1\n")
	c.Start()

	assert.Equal(t, 0, tree.Len())
	assert.NotContains(t, out.String(), "btree(")
}

func TestCli_UnknownAndUsage(t *testing.T) {
	c, _, out := newTestCli(t, "frobnicate\ninsert\nbulk\nrandom\n\n")
	c.Start()

	s := out.String()
	assert.Contains(t, s, `Unknown command "frobnicate"`)
	assert.Contains(t, s, "Usage: INSERT")
	assert.Contains(t, s, "Usage: BULK")
	assert.Contains(t, s, "Usage: RANDOM")
}

func TestCli_RandomRejectsHugeCount(t *testing.T) {
	c, tree, out := newTestCli(t, "random 1000000000000000000\nrandom 100001\n")
	c.Start()

	assert.Equal(t, 2, strings.Count(out.String(), "Usage: RANDOM <n>, n must be between 1 and 100000"))
	assert.Equal(t, 0, tree.Len())

	assert.Error(t, c.InsertRandom(MaxRandom+1))
	assert.Error(t, c.InsertRandom(0))
	assert.Equal(t, 0, tree.Len())
}

func TestCli_History(t *testing.T) {
	c, tree, out := newTestCli(t, "insert 30 10\nbulk 20,5\nhistory\nkeys\n")
	c.Start()

	assert.Equal(t, []int{30, 10, 20, 5}, c.History())
	assert.Equal(t, []int{5, 10, 20, 30}, tree.Keys())
	s := out.String()
	assert.Contains(t, s, "30,10,20,5\n")
	assert.Contains(t, s, "5,10,20,30\n")
}

func TestCli_HistoryClearedOnReset(t *testing.T) {
	c, _, _ := newTestCli(t, "bulk 3,1,2\nreset\ninsert 7\n")
	c.Start()

	assert.Equal(t, []int{7}, c.History())
}

func TestCli_Degree(t *testing.T) {
	c, old, out := newTestCli(t, "bulk 1,2,3,4\ndegree 3\nbulk 1,2,3,4,5\nhistory\n")
	c.Start()

	tree := c.Tree()
	assert.NotSame(t, old, tree)
	assert.Equal(t, 3, tree.Degree())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.Keys())
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.History())

	s := out.String()
	assert.Contains(t, s, "btree(t=3 height=1 keys=0)\n[]")
	assert.Contains(t, s, "[1 | 2 | 3 | 4 | 5]")
}

func TestCli_DegreeRejectsInvalid(t *testing.T) {
	c, tree, out := newTestCli(t, "bulk 1,2\ndegree 1\ndegree two\ndegree\n")
	c.Start()

	assert.Same(t, tree, c.Tree())
	assert.Equal(t, []int{1, 2}, c.History())
	s := out.String()
	assert.Equal(t, 2, strings.Count(s, "invalid configuration"))
	assert.Contains(t, s, "Usage: DEGREE <t>")

	assert.ErrorIs(t, c.SetDegree("1"), btree.ErrInvalidConfiguration)
	assert.ErrorIs(t, c.SetDegree("x"), btree.ErrInvalidConfiguration)
}

// failingJSONWriter rejects the encoded stats but accepts everything else.
type failingJSONWriter struct {
	bytes.Buffer
}

func (w *failingJSONWriter) Write(p []byte) (int, error) {
	if bytes.HasPrefix(p, []byte("{")) {
		return 0, errors.New("disk full")
	}
	return w.Buffer.Write(p)
}

func TestCli_StatsWriteError(t *testing.T) {
	tree, err := btree.New[int](2, &btree.Options{})
	require.NoError(t, err)

	out := &failingJSONWriter{}
	c := NewCli(bufio.NewScanner(strings.NewReader("")), out, tree, true)
	c.printStats()

	assert.Equal(t, "Error: disk full\n", out.String())
}
