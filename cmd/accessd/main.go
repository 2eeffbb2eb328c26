// accessd is an operator tool over the access ledger: it replays a
// JSON scenario of lifecycle events and decisions against an empty
// store, then dumps the resulting snapshot or answers a single
// decision query.
package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"
)

type options struct {
	Replay ReplayCommand `command:"replay" description:"Replay a scenario and print the resulting snapshot as JSON"`
	Check  CheckCommand  `command:"check" description:"Replay a scenario and evaluate one decision query"`
}

func main() {
	parserOpts := &options{}
	parser := flags.NewParser(parserOpts, flags.Default)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		os.Exit(1)
	}
}
