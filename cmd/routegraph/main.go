// Command routegraph loads route networks, computes shortest paths and greedy
// round trips, fetches travel matrices from Mapbox and exports diagrams.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
