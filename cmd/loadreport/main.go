// Package main is the entry point for the loadreport application
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ethpandaops/loadreport/cmd"
	"github.com/joho/godotenv"
)

const (
	envFlag      = "--env"
	envFlagEqual = "--env="
)

func main() {
	envFile, runTUI, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !runTUI {
		// cobra handles --env itself
		cmd.Execute()

		return
	}

	if err := loadEnvFile(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
		os.Exit(1)
	}

	// LOG_LEVEL may come from the env file
	cmd.InitLogger()
	cmd.RunInteractive(context.Background())
}

// parseArgs extracts the env file and decides whether to run the TUI: only
// when no arguments besides --env are given.
func parseArgs(args []string) (envFile string, runTUI bool, err error) {
	for i, arg := range args {
		if arg == envFlag && i+1 < len(args) {
			envFile = args[i+1]
			break
		}
		if strings.HasPrefix(arg, envFlagEqual) {
			envFile = arg[len(envFlagEqual):]
			break
		}
	}

	switch len(args) {
	case 1:
		return envFile, true, nil
	case 2:
		if args[1] == envFlag {
			return "", false, fmt.Errorf("%s flag requires a value", envFlag)
		}
		return envFile, strings.HasPrefix(args[1], envFlagEqual), nil
	case 3:
		return envFile, args[1] == envFlag, nil
	default:
		return envFile, false, nil
	}
}

// loadEnvFile loads the specified environment file
func loadEnvFile(file string) error {
	if file == "" {
		file = ".env"
	}

	if err := godotenv.Overload(file); err != nil {
		// If it's the default .env file and it doesn't exist, that's okay
		if file == ".env" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}
