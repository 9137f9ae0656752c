package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/qanoonsoft/docwizard/internal/cli"
)

func main() {
	// Optional .env with DOCWIZARD_* overrides; absence is fine.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
