package batch

import (
	"io"
	"os"
)

var (
	Debug             = false     // set to true for verbose debug output and outcome stats
	DBPath            = ""        // when set, overrides the job file "db"
	RawOut            = ""        // when set, overrides the job file "rawOut"
	Workers           = 0         // when > 0, overrides the job file "workers"
	Stdout  io.Writer = os.Stdout // report destination
)
