package main

import (
	"github.com/joho/godotenv"

	"github.com/atxtransit/capmetro-cli/cmd"
)

func main() {
	// Optional .env overrides for feed URLs and paths; absence is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
