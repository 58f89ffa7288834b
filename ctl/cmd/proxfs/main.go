package main

import (
	"os"

	"github.com/proxfs/proxfs-go/ctl/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
