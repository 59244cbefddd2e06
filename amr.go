// Package amr provides the shared building blocks for annotating genomic
// sequence data with antimicrobial resistance gene information:
// frequency tables built from the tabular reports of external tools,
// directory artifacts holding per-sample outputs, and a runner for the
// tools themselves.
package amr

import (
	"log"
	"os"
)

var (
	Info *log.Logger
	Warn *log.Logger
)

func init() {
	Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
}
