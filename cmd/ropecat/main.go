// Command ropecat concatenates its standard input line by line into a
// single rope and writes the result back out, the way the teacher's own
// cmd/short-regexp reads stdin and writes a single derived result. It
// exists to exercise the rope façade end-to-end outside of tests, and to
// give the natural-sort and colored-output dependencies a real consumer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/xlab/handysort"

	"github.com/fvbommel/rope/rope"
	"github.com/fvbommel/rope/rope/seqrun"
)

func main() {
	natural := flag.Bool("natural", false, "natural-sort input lines before concatenating")
	stats := flag.Bool("stats", false, "print a balance status line to stderr")
	flag.Parse()

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ropecat: %s\n", err)
		os.Exit(1)
	}

	lines := strings.Split(string(data), "\n")
	// Remove trailing empty line if present.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if *natural {
		sort.Sort(handysort.Strings(lines))
	}

	r := buildRope(lines)

	for it := r.NewIterator(); !it.Done(); it.Next() {
		l := it.Value()
		os.Stdout.Write([]byte(l.Run)[:l.Size])
	}

	if *stats {
		printStats(r)
	}
}

func buildRope(lines []string) *rope.Rope[seqrun.ByteRun, rope.GC[seqrun.ByteRun]] {
	r := rope.New[seqrun.ByteRun](seqrun.ByteRun(nil), 0, rope.GC[seqrun.ByteRun]{})
	for _, line := range lines {
		chunk := seqrun.ByteRun(line + "\n")
		r.Append(chunk, len(chunk))
	}
	return r
}

func printStats(r *rope.Rope[seqrun.ByteRun, rope.GC[seqrun.ByteRun]]) {
	status := "balanced"
	c := color.New(color.FgGreen)
	if !r.IsBalanced() {
		status = "unbalanced"
		c = color.New(color.FgRed)
	}
	c.Fprintf(os.Stderr, "ropecat: %d elements, %s\n", r.Len(), status)
}
