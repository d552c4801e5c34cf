package main

import (
	"fmt"
	"os"

	"campus-services-client/cmd/campusapp/commands"
)

func main() {
	root := commands.Root()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
