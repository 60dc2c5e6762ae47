package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/cmd/myhome/cli"
)

func main() {
	// A missing .env is fine; the config layer falls back to defaults.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
