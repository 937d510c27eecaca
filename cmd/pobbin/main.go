package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/db"
	"github.com/Dav1dde/pasteofexile-sub000/internal/mcp"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"decode": true, "summary": true, "item": true, "notes": true,
	"store": true, "fetch": true, "list": true, "delete": true, "purge": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
              _     _     _
   _ __  ___ | |__ | |__ (_)_ __
  | '_ \/ _ \| '_ \| '_ \| | '_ \
  | |_) | (_) | |_) | |_) | | | | |
  | .__/ \___/|_.__/|_.__/|_|_| |_|
  |_|

  Path of Building export decoder and paste store

  Usage: pobbin <command> [options]
         pobbin --help

  MCP server mode requires piped input.`)
}

// warnUnknown logs disabled tools and types that match nothing.
func warnUnknown(cfg *config.Config) {
	for _, name := range mcp.ValidateDisabledTools(cfg.DisabledTools) {
		log.Printf("warning: unknown tool in disabled_tools: %q", name)
	}
	for _, name := range mcp.ValidateDisabledTypes(cfg.DisabledTypes) {
		log.Printf("warning: unknown type in disabled_types: %q", name)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pobbin: ")

	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, config.DefaultConfig())
		if err := app.Run(os.Args); err != nil {
			log.Fatalf("error: %v", err)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error: could not determine home directory: %v", err)
	}
	baseDir := filepath.Join(homeDir, config.DirName)

	cwd, _ := os.Getwd()
	cfg, err := config.LoadWithRepo(baseDir, cwd)
	if err != nil {
		log.Fatalf("error: failed to load config: %v", err)
	}

	database, err := db.Init(baseDir)
	if err != nil {
		log.Fatalf("error: failed to initialize database: %v", err)
	}
	defer database.Close()
	db.ConfigurePool(database, cfg)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(database, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			database.Close()
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'pobbin --help' for usage.\n")
		database.Close()
		os.Exit(1)
	}

	warnUnknown(cfg)

	// MCP server mode (default)
	if err := mcp.Run(database, cfg, Version); err != nil {
		database.Close()
		log.Fatalf("error: %v", err)
	}
}
