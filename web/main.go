package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/weekend-raytracer/pkg/config"
	"github.com/df07/weekend-raytracer/web/server"
)

func main() {
	cfg, err := config.Load("..")
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.ListenAddr, "Address to serve on")
	flag.Parse()

	webServer := server.NewServer(*addr, cfg)

	log.Printf("Weekend Raytracer Web Server")
	log.Printf("Visit http://localhost%s to start rendering", *addr)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
