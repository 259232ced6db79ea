package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/ectd-registry/internal/testenv"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbOnly bool
	flag.BoolVar(&dbOnly, "db-only", false, "start only the database container")
	flag.Parse()

	usage := `
Run the ectd-registry testcontainers with the environment variables from the .env file.

Usage:

testcontainers [-h] [-db-only] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	started := make(chan *testenv.Containers, 1)
	go func() {
		start := testenv.StartAll
		if dbOnly {
			start = testenv.StartDatabase
		}
		containers, err := start(nil)
		if err != nil {
			log.Fatalf("Failed to create test containers: %v\n", err)
		}
		started <- containers
	}()

	var containers *testenv.Containers
	select {
	case containers = <-started:
		log.Println("Test containers are running, press Ctrl+C to stop")
		<-sigs
	case <-sigs:
	}

	log.Println("Terminating test containers...")
	if containers != nil {
		containers.Terminate(nil)
	}
}
