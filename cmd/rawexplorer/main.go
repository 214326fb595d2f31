// Command rawexplorer inspects a Factorio data.raw dump against the
// prototype API documentation: it resolves JSON Pointers to schema types,
// prints annotated trees and reports schema problems.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("rawexplorer-%s: %v", version, err)
		os.Exit(1)
	}
}
