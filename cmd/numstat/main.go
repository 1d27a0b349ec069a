// Command numstat prints the numeric properties of one number, or compares
// two.
package main

import (
	"errors"
	"fmt"
	"os"
)

// errReported marks a failure whose message has already been printed
var errReported = errors.New("input rejected")

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
