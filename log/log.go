package log

import (
	"io"
	"io/ioutil"
	"log"
	"os"
)

var (
	Trace   = log.New(ioutil.Discard, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info    = log.New(ioutil.Discard, "", 0)
	Warning = log.New(os.Stderr, "WARNING: ", log.Ldate|log.Ltime)
	Error   = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
)

func Init(
	traceHandle io.Writer,
	infoHandle io.Writer,
	warningHandle io.Writer,
	errorHandle io.Writer) {

	Trace = log.New(traceHandle,
		"TRACE: ",
		log.Ldate|log.Ltime|log.Lshortfile)

	Info = log.New(infoHandle,
		"",
		0)

	Warning = log.New(warningHandle,
		"WARNING: ",
		log.Ldate|log.Ltime)

	Error = log.New(errorHandle,
		"ERROR: ",
		log.Ldate|log.Ltime|log.Lshortfile)
}

// InitLog wires the loggers for a command line run.
// Trace output is only shown when DNT_TRACE=1.
func InitLog() {
	var trace io.Writer
	if os.Getenv("DNT_TRACE") == "1" {
		trace = os.Stdout
	} else {
		trace = ioutil.Discard
	}

	Init(trace, os.Stdout, os.Stdout, os.Stderr)
}
