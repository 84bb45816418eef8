package main

import (
	"log"
	"time"

	"tableflip.dev/agenda/pkg/commands"
	"tableflip.dev/agenda/pkg/date"
)

func main() {
	today := date.Today(time.Now())
	if err := commands.New(today).Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
