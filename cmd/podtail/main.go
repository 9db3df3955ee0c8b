package main

import (
	"github.com/podtail/podtail/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}
