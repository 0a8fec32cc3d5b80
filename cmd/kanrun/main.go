// Command kanrun loads a .kan relation/query file (see internal/script)
// and runs one of its named queries, printing reified answers.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

var version = "0.1.0"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	c := cli.NewCLI("kanrun", version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"run": func() (cli.Command, error) { return &runCommand{}, nil },
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitStatus
}
