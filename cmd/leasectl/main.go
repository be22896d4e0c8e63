// Command leasectl is the operator tool: it applies the database schema and
// mints project tokens.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
