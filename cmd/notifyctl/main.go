// notifyctl - desktop notification behaviours for reactive entities
// Source: https://github.com/ariel-frischer/notifybehaviour

package main

import (
	"os"

	"github.com/ariel-frischer/notifybehaviour/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
