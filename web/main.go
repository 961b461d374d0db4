package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/renderer"
	"github.com/solemnwind/go-wavefront-pathtracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the viewer server")
	flag.Parse()

	srv := server.NewServer(*port, renderer.NewDefaultLogger())
	if err := srv.Start(); err != nil {
		fmt.Printf("Server error: %v\n", err)
		os.Exit(1)
	}
}
