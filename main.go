package main

import (
	"github.com/berggren/turbinia/cmd"
)

func main() {
	cmd.Execute()
}
