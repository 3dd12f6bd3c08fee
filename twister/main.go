package main

import (
	"log"

	"github.com/tutils/twister/cmd"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	cmd.Execute()
}
