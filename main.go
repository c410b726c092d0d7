package main

import (
	"flag"
	"os"

	"github.com/inkpad/inkpad/config"
	"github.com/inkpad/inkpad/log"
	"github.com/inkpad/inkpad/shell"
	"github.com/inkpad/inkpad/store"
)

func main() {
	server := flag.Bool("server", false, "run the HTTP API instead of the shell")
	addr := flag.String("addr", ":8090", "HTTP listen address")
	storeDir := flag.String("store", "", "override the store directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Error.Fatal(err)
	}

	dir := cfg.StoreDir
	if *storeDir != "" {
		dir = *storeDir
	}

	s, err := store.Open(dir)
	if err != nil {
		log.Error.Fatal(err)
	}
	log.Trace.Printf("store: %s", s.Dir())

	if *server {
		api := NewApiServer(s, cfg)
		if err := api.Serve(*addr); err != nil {
			log.Error.Fatal(err)
		}
		return
	}

	if err := shell.RunShell(s, cfg, flag.Args()); err != nil {
		log.Error.Println(err)
		os.Exit(1)
	}
}
