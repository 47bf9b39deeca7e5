package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
