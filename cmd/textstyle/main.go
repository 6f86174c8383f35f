// Command textstyle resolves and renders typography props.
package main

import (
	"os"

	"github.com/opencode-ai/textstyle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
