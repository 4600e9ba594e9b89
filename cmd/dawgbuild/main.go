// Command dawgbuild reads words, one per line, from standard input and
// writes a packed dawgidx index to the given output file.
//
// Usage:
//
//	dawgbuild OUTPUT_INDEX_FILE
//
// Input must be sorted, non-empty, and free of the reserved 0x00 byte; see
// dawgidx's DawgBuilder.Insert for the exact error conditions.
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
		fmt.Fprintf(os.Stderr, "Usage: %s OUTPUT_INDEX_FILE\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputFile := flag.Arg(0)

	builder := dawgidx.NewDawgBuilder()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := builder.Insert(scanner.Bytes()); err != nil {
			log.Printf("[ERROR] Can't build DAWG: reason=%s", err)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[ERROR] Can't read words from standard input: reason=%s", err)
		os.Exit(1)
	}

	dawg := builder.Finish()
	trie := dawgidx.NewDoubleArrayBuilder().Build(dawg)

	if err := trie.Save(outputFile); err != nil {
		log.Printf("[ERROR] Can't save dawg index: path=%s, reason=%s", outputFile, err)
		os.Exit(1)
	}

	fmt.Println("DONE")
}
