package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/linkdb-labs/linkdb/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// A .env file is optional; LINKDB_* variables may come from it.
	_ = godotenv.Load()

	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
