package main

import (
	"github.com/sealbox/sealbox/cmd"
)

func main() {
	cmd.Execute()
}
