package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "config" {
		configCmd := flag.NewFlagSet("config", flag.ExitOnError)
		configCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: sugoi config [flags]\n\nEdit the config file interactively.\n\nFlags:\n")
			configCmd.PrintDefaults()
		}
		cfgPath := configCmd.String("config", "", "path to configuration file")
		_ = configCmd.Parse(os.Args[2:])

		if err := runConfigEditor(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sugoi [flags]\n       sugoi config [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  config  Edit the config file interactively\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: ./sugoi.yaml or <user config dir>/sugoi/config.yaml)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	route := flag.String("route", "", "fragment to open at start, e.g. #/digest (overrides start_route in config)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *route); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
