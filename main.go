package main

import (
	"fmt"
	"os"

	"github.com/gnote/dnttools/config"
	"github.com/gnote/dnttools/log"
	"github.com/gnote/dnttools/shell"
	"github.com/gnote/dnttools/version"
	flag "github.com/ogier/pflag"
)

func main() {
	serverMode := flag.BoolP("server", "s", false, "run the HTTP conversion server")
	port := flag.StringP("port", "p", "", "server port")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] [file.dnt [command [args]]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.InitLog()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error.Fatal(err)
	}

	if *serverMode {
		if *port == "" {
			*port = cfg.Port
		}
		runServerMode(cfg, *port)
		return
	}

	var input string
	args := flag.Args()
	if len(args) > 0 {
		input, args = args[0], args[1:]
	}

	if err := shell.RunShell(cfg, input, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
