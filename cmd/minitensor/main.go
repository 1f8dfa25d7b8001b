// Package main provides the minitensor CLI.
package main

import (
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("minitensor: %v", err)
	}
}
