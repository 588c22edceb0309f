// Command ignite generates and times prescribed-burn ignition patterns.
package main

import (
	"fmt"
	"os"

	"github.com/emberline/ignite/ignitecli"
)

func main() {
	if err := ignitecli.RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
