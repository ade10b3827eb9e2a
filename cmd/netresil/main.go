// Command netresil studies the error and attack tolerance of networks.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/netresil/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
