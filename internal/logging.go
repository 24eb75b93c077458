package internal

import (
	"flag"
	"strconv"

	"github.com/golang/glog"
)

// InitLogging sends glog output to stderr at the given verbosity instead of
// log files. Stdout is reserved for stat output.
func InitLogging(verbosity int) {
	if f := flag.Lookup("logtostderr"); f != nil {
		_ = f.Value.Set("true")
	}
	if f := flag.Lookup("v"); f != nil {
		_ = f.Value.Set(strconv.Itoa(verbosity))
	}
}

// FlushLogs writes any buffered log entries.
func FlushLogs() {
	glog.Flush()
}
