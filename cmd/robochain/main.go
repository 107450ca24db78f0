// Command robochain prints the complexity score of a list of door codes
// typed through a relay of robots.
//
// Usage:
//
//	robochain [-robots 2] [-input codes.txt] [-v]
//
// Codes are read one per line; blank lines are ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/robochain/chain"
)

func main() {
	robots := flag.Int("robots", chain.DefaultRobots, "number of intermediate robots")
	input := flag.String("input", "", "file with one code per line (default stdin)")
	verbose := flag.Bool("v", false, "log every priced code")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("robochain: ")

	in := io.Reader(os.Stdin)
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	codes, err := readCodes(in)
	if err != nil {
		log.Fatalf("read codes: %v", err)
	}

	opts := []chain.Option{chain.WithRobots(*robots)}
	if *verbose {
		opts = append(opts, chain.WithOnCode(func(code string, length, value int) {
			log.Printf("%s: length=%d value=%d complexity=%d", code, length, value, length*value)
		}))
	}
	s, err := chain.New(opts...)
	if err != nil {
		log.Fatalf("build solver: %v", err)
	}

	total, err := s.Solve(codes)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	if *verbose {
		log.Printf("%d codes, depth %d, %d memo entries", len(codes), s.Depth(), s.MemoSize())
	}
	fmt.Println(total)
}

// readCodes returns the trimmed non-blank lines of r.
func readCodes(r io.Reader) ([]string, error) {
	var codes []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			codes = append(codes, line)
		}
	}
	return codes, sc.Err()
}
