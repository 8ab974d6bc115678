package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/naggynab/DSA-Project/btree"
	"github.com/naggynab/DSA-Project/cli"
)

var (
	degree      = flag.Int("degree", 3, "Minimum degree t of the B-Tree (at least 2).")
	keys        = flag.String("keys", "", "Comma separated keys to insert in one batch before printing the tree.")
	seed        = flag.Int("seed", 0, "Insert this many random keys created with go-faker before starting.")
	interactive = flag.Bool("interactive", false, "Start the interactive session even when -keys is given.")
	noColor     = flag.Bool("no-color", false, "Disable colored output.")
	verbose     = flag.Bool("verbose", false, "Log every split and root growth.")
)

func main() {
	flag.Parse()

	opts := &btree.Options{}
	if *verbose {
		opts.Log = log.Printf
	}

	tree, err := btree.New[int](*degree, opts)
	if err != nil {
		log.Fatalf("failed to create tree: %v", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree, *noColor)

	if *seed > 0 {
		if err := demo.InsertRandom(*seed); err != nil {
			log.Fatalf("failed to seed tree: %v", err)
		}
	}

	if *keys != "" {
		if err := demo.Bulk(*keys); err != nil {
			log.Fatalf("failed to insert keys: %v", err)
		}
		demo.Show()
		if !*interactive {
			return
		}
	}

	demo.Start()
}
