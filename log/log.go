package log

import (
	"io"
	"log"
	"os"
)

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

// TracingEnabled reports whether trace logging was requested
// through the environment.
func TracingEnabled() bool {
	return os.Getenv("INKPAD_TRACE") == "1"
}

func InitLog() {
	traceHandle := io.Discard
	if TracingEnabled() {
		traceHandle = os.Stdout
	}

	Trace = log.New(traceHandle, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(os.Stdout, "", 0)
	Warning = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime)
	Error = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
}

func init() {
	InitLog()
}
