package main

import (
	"github.com/madhuraks/ecobazaar/cmd"
)

func main() {
	cmd.Start()
}
