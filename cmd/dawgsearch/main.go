// Command dawgsearch loads a dawgidx index and answers interactive
// common-prefix queries against it, one per line of standard input.
//
// Usage:
//
//	dawgsearch INDEX_FILE
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milden6/dawgidx"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s INDEX_FILE\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	indexFile := flag.Arg(0)

	trie, err := dawgidx.Load(indexFile)
	if err != nil {
		log.Printf("[ERROR] Can't load DAWG index: path=%s, reason=%s", indexFile, err)
		os.Exit(1)
	}
	defer trie.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		for _, m := range trie.SearchCommonPrefix([]byte(line)) {
			fmt.Printf("[%d] %s\n", m.ID, m.Prefix)
		}
		fmt.Println()
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[ERROR] Can't read a line from standard input: reason=%s", err)
		os.Exit(1)
	}
}
