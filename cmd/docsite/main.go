// Command docsite checks, prints and previews the configuration of a
// documentation site build.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/eringen/docsite"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)

	root := newRootCmd(docsite.ProcessEnv)
	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("docsite failed")
	}
}
