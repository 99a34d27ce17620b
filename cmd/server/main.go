package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qnkhuat/tetristerm/pkg"
)

func main() {
	logPath := flag.String("log", "./server.log", "path to log file")
	listen := flag.String("listen-ssh", pkg.SshPort, "SSH address to listen on")
	binary := flag.String("binary", "tetristerm", "path to the tetristerm client binary")
	hostKey := flag.String("host-key", "", "path to SSH host key (default ~/.ssh/id_rsa)")
	flag.Parse()

	pkg.InitLog(*logPath, "SERVER: ")

	s, err := pkg.NewServer(*listen, *binary, *hostKey)
	if err != nil {
		log.Fatalf("failed to create server: %s", err)
	}

	go func() {
		log.Printf("Listening at %s", *listen)
		if err := s.ListenAndServe(); err != nil {
			log.Printf("Server stopped: %s", err)
		}
	}()

	// Wait for terminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("Failed to shut down: %s", err)
	}
	log.Println("Server stopped")
}
