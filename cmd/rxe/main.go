// Command rxe counts and enumerates the finite language a regex
// denotes, using the rxe package's arbitrary-precision cardinality,
// deterministic enumeration, and random access (spec.md §6.4).
package main

import "os"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
