package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-faker/faker/v4"

	"github.com/naggynab/DSA-Project/btree"
)

// MaxRandom caps the number of keys a single RANDOM command may generate.
const MaxRandom = 100_000

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *btree.Tree[int]
	visualizer *btree.Visualizer[int]

	// keys in the order they were inserted since the last reset
	history []int
}

func NewCli(s *bufio.Scanner, out io.Writer, t *btree.Tree[int], noColor bool) *Cli {
	v := &btree.Visualizer[int]{
		Tree:    t,
		NoColor: noColor,
	}
	return &Cli{scanner: s, out: out, tree: t, visualizer: v}
}

// Tree returns the tree the session currently works on. DEGREE replaces it.
func (c *Cli) Tree() *btree.Tree[int] {
	return c.tree
}

// History returns the inserted keys in insertion order.
func (c *Cli) History() []int {
	return slices.Clone(c.history)
}

// Start runs the read-eval-print loop until EXIT or end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B-Tree CLI (minimum degree %d)

Available Commands:
  INSERT <k> [k...]  Insert keys one at a time, showing the tree after each
  BULK <k1,k2,...>   Insert all keys, then show the tree once
  RANDOM <n>         Insert n distinct random keys
  SHOW               Draw the tree
  LEVELS             Draw the tree level by level
  KEYS               Print all keys in order
  HISTORY            Print keys in the order they were inserted
  DEGREE <t>         Start over with an empty tree of minimum degree t
  STATS              Print tree statistics as JSON
  CHECK              Verify the tree invariants
  RESET              Remove every key
  HELP               Show this message
  EXIT               Terminate this session
`, c.tree.Degree())
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput handles one line and reports whether the session continues.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "insert":
		c.processInsertCommand(fields[1:])
	case "bulk":
		c.processBulkCommand(fields[1:])
	case "random":
		c.processRandomCommand(fields[1:])
	case "show":
		c.Show()
	case "levels":
		fmt.Fprintln(c.out, c.visualizer.Levels())
	case "keys":
		fmt.Fprintln(c.out, formatKeys(c.tree.Keys()))
	case "history":
		fmt.Fprintln(c.out, formatKeys(c.history))
	case "degree":
		c.processDegreeCommand(fields[1:])
	case "stats":
		c.printStats()
	case "check":
		if err := c.tree.Check(); err != nil {
			fmt.Fprintf(c.out, "Check failed: %v\n", err)
			return true
		}
		fmt.Fprintln(c.out, "OK")
	case "reset":
		c.tree.Reset()
		c.history = nil
		fmt.Fprintln(c.out, c.tree)
	case "help":
		c.printHelp()
	case "exit", "quit", "q":
		return false
	}
	return true
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: INSERT <key> [key...]")
		return
	}
	for _, arg := range args {
		key, err := parseKey(arg)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		if err := c.insert(key); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		c.Show()
	}
}

func (c *Cli) processDegreeCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DEGREE <t>")
		return
	}
	if err := c.SetDegree(args[0]); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	c.Show()
}

// SetDegree replaces the tree with an empty one of minimum degree t and
// clears the history. The current tree is kept if t is not valid.
func (c *Cli) SetDegree(t string) error {
	degree, err := strconv.Atoi(t)
	if err != nil {
		return errors.Wrapf(btree.ErrInvalidConfiguration, "degree %q is not an integer", t)
	}
	tree, err := c.tree.WithDegree(degree)
	if err != nil {
		return err
	}
	c.tree = tree
	c.visualizer.Tree = tree
	c.history = nil
	return nil
}

func (c *Cli) processBulkCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: BULK <k1,k2,...>")
		return
	}
	if err := c.Bulk(strings.Join(args, ",")); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	c.Show()
}

func (c *Cli) processRandomCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: RANDOM <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > MaxRandom {
		fmt.Fprintf(c.out, "Usage: RANDOM <n>, n must be between 1 and %d\n", MaxRandom)
		return
	}
	if err := c.InsertRandom(n); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	c.Show()
}

// Bulk parses a comma separated list of integers and inserts them in order.
// Nothing is inserted if any key fails to parse.
func (c *Cli) Bulk(list string) error {
	var keys []int
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		key, err := parseKey(s)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}
	for _, k := range keys {
		if err := c.insert(k); err != nil {
			return err
		}
	}
	return nil
}

// InsertRandom inserts n distinct random keys drawn from [1, 10n].
// n must be between 1 and MaxRandom.
func (c *Cli) InsertRandom(n int) error {
	if n < 1 || n > MaxRandom {
		return errors.Newf("random key count %d outside [1, %d]", n, MaxRandom)
	}
	keys, err := faker.RandomInt(1, 10*n, n)
	if err != nil {
		return errors.Wrap(err, "generate random keys")
	}
	for _, k := range keys {
		if err := c.insert(k); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cli) insert(key int) error {
	if err := c.tree.Insert(key); err != nil {
		return err
	}
	c.history = append(c.history, key)
	return nil
}

// Show prints the tree summary followed by its drawing.
func (c *Cli) Show() {
	fmt.Fprintln(c.out, c.tree)
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) printStats() {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.tree.Stats()); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}

func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(btree.ErrInvalidKey, "%q is not an integer", s)
	}
	return key, nil
}

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ",")
}
