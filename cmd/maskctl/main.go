package main

import (
	"os"

	"github.com/m04kA/SMC-StoreAdmin/cmd/maskctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
