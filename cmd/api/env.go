package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// defaultPort is used when PORT is not set.
const defaultPort = "3000"

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// listenAddr builds the listen address from the PORT environment variable.
func listenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	return ":" + port
}
