// Command backre-test is a thin line-matching harness over the backre
// package, in the shape of a grep-style filter: compile a pattern once,
// then test it against stdin one line at a time.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/coregx/backre"
)

func main() {
	if len(os.Args) < 3 || os.Args[1] != "-E" {
		fmt.Fprintf(os.Stderr, "usage: backre-test -E <pattern>\n")
		os.Exit(2)
	}

	pattern := os.Args[2]

	re, err := backre.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error compiling pattern: %v\n", err)
		os.Exit(2)
	}

	scanner := bufio.NewScanner(os.Stdin)
	matchFound := false

	for scanner.Scan() {
		line := scanner.Text()
		if re.MatchString(line) {
			matchFound = true
			fmt.Println(line)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}

	if !matchFound {
		os.Exit(1)
	}
}
