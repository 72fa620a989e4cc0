// main is the entry point for the habitctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/habitctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
