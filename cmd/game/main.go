// Command game starts straight into a game: "game amulet" is the same as
// "textr play amulet".
package main

import (
	"fmt"
	"os"

	"github.com/tatianab/textr/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	cmd.SetArgs(append([]string{"play"}, os.Args[1:]...))
	if err := cmd.Execute(); err != nil {
		fmt.Printf("Error running game: %v\n", err)
		os.Exit(1)
	}
}
