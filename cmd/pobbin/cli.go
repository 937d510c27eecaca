package main

import (
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
	"github.com/Dav1dde/pasteofexile-sub000/internal/ops"
)

// maxTextBytes bounds stdin for item text and notes.
const maxTextBytes = 1 << 20

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "pobbin",
		Usage:   "Path of Building export decoder and paste store",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: cfg.OutputFormat, Usage: "Output format: json|yaml"},
		},
		Commands: []*cli.Command{
			decodeCmd(cfg),
			summaryCmd(cfg),
			itemCmd(),
			notesCmd(cfg),
			storeCmd(db, cfg),
			fetchCmd(db),
			listCmd(db),
			deleteCmd(db),
			purgeCmd(db),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// codeInput returns the export code from the first argument or stdin.
func codeInput(c *cli.Context, cfg *config.Config) (string, error) {
	if c.NArg() > 0 {
		return c.Args().First(), nil
	}
	if !stdinHasData() {
		return "", errors.NewInvalidRequest("code must be passed as an argument or piped via stdin")
	}
	limit := int64(0)
	if cfg != nil && cfg.MaxBuildBytes > 0 {
		// Trailing whitespace is allowed past the limit; decodeCode checks the exact size.
		limit = int64(cfg.MaxBuildBytes) + 1024
	}
	return readStdin(limit)
}

// decodeCmd creates the decode command.
func decodeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode an export code (argument or stdin)",
		ArgsUsage: "[code]",
		Action: func(c *cli.Context) error {
			code, err := codeInput(c, cfg)
			if err != nil {
				return outputError(err)
			}

			out, err := ops.Decode(cfg, ops.DecodeInput{Code: code})
			if err != nil {
				return outputError(err)
			}

			return output(c, out)
		},
	}
}

// summaryCmd creates the summary command.
func summaryCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "summary",
		Usage:     "Summarize a build: title and key stats",
		ArgsUsage: "[code]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-level", Usage: "Omit the level from the title"},
			&cli.BoolFlag{Name: "lines", Aliases: []string{"l"}, Usage: "Print the title and stat lines as plain text"},
		},
		Action: func(c *cli.Context) error {
			code, err := codeInput(c, cfg)
			if err != nil {
				return outputError(err)
			}

			out, err := ops.Summarize(cfg, ops.SummarizeInput{
				Code:    code,
				NoLevel: c.Bool("no-level"),
			})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("lines") {
				w := c.App.Writer
				fmt.Fprintln(w, out.Title)
				for _, l := range out.Lines {
					fmt.Fprintln(w, l)
				}
				return nil
			}
			return output(c, out)
		},
	}
}

// itemCmd creates the item command.
func itemCmd() *cli.Command {
	return &cli.Command{
		Name:  "item",
		Usage: "Parse item text (reads the item from stdin)",
		Action: func(c *cli.Context) error {
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("item text must be piped via stdin"))
			}
			text, err := readStdin(maxTextBytes)
			if err != nil {
				return outputError(err)
			}

			out, err := ops.ParseItem(ops.ParseItemInput{Text: text})
			if err != nil {
				return outputError(err)
			}

			return output(c, out)
		},
	}
}

// notesCmd creates the notes command.
func notesCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "notes",
		Usage:     "Render build notes as HTML",
		ArgsUsage: "[code]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "raw", Usage: "Read raw notes from stdin instead of an export code"},
			&cli.BoolFlag{Name: "html", Usage: "Print only the rendered HTML"},
		},
		Action: func(c *cli.Context) error {
			var input ops.RenderNotesInput
			if c.Bool("raw") {
				if !stdinHasData() {
					return outputError(errors.NewInvalidRequest("notes must be piped via stdin"))
				}
				notes, err := readStdin(maxTextBytes)
				if err != nil {
					return outputError(err)
				}
				input.Notes = notes
			} else {
				code, err := codeInput(c, cfg)
				if err != nil {
					return outputError(err)
				}
				input.Code = code
			}

			out, err := ops.RenderNotes(cfg, input)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("html") {
				_, err := fmt.Fprintln(c.App.Writer, out.HTML)
				return err
			}
			return output(c, out)
		},
	}
}

// storeCmd creates the store command.
func storeCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "store",
		Usage:     "Store an export code as a paste",
		ArgsUsage: "[code]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Paste title (defaults to the build title)"},
		},
		Action: func(c *cli.Context) error {
			code, err := codeInput(c, cfg)
			if err != nil {
				return outputError(err)
			}

			out, err := ops.Store(c.Context, db, cfg, ops.StoreInput{
				Code:  code,
				Title: c.String("title"),
			})
			if err != nil {
				return outputError(err)
			}

			return output(c, out)
		},
	}
}

// fetchCmd creates the fetch command.
func fetchCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch a paste by ID",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "include-deleted", Usage: "Include soft-deleted pastes"},
			&cli.BoolFlag{Name: "no-code", Usage: "Exclude the export code from output"},
			&cli.BoolFlag{Name: "decode", Aliases: []string{"d"}, Usage: "Attach the decoded build"},
		},
		Action: func(c *cli.Context) error {
			input := ops.FetchInput{
				ID:             c.Args().First(),
				IncludeDeleted: c.Bool("include-deleted"),
				Decode:         c.Bool("decode"),
			}
			if c.Bool("no-code") {
				includeCode := false
				input.IncludeCode = &includeCode
			}

			out, err := ops.Fetch(c.Context, db, input)
			if err != nil {
				return outputError(err)
			}

			return output(c, out)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List pastes, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "class", Aliases: []string{"c"}, Usage: "Filter by base class"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Max items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Usage: "Pagination offset"},
			&cli.BoolFlag{Name: "include-deleted", Usage: "Include soft-deleted pastes"},
		},
		Action: func(c *cli.Context) error {
			out, err := ops.List(c.Context, db, ops.ListInput{
				Class:          c.String("class"),
				Limit:          c.Int("limit"),
				Offset:         c.Int("offset"),
				IncludeDeleted: c.Bool("include-deleted"),
			})
			if err != nil {
				return outputError(err)
			}

			return output(c, out)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Soft-delete a paste",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			out, err := ops.Delete(c.Context, db, ops.DeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return output(c, out)
		},
	}
}

// purgeCmd creates the purge command.
func purgeCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "purge",
		Usage: "Permanently delete soft-deleted pastes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "older-than", Usage: "Only purge if deleted more than N days ago (e.g., 7d)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.PurgeInput{}

			if olderThan := c.String("older-than"); olderThan != "" {
				days, err := parseDuration(olderThan)
				if err != nil {
					return outputError(errors.NewInvalidRequest(err.Error()))
				}
				input.OlderThanDays = &days
			}

			out, err := ops.Purge(c.Context, db, input)
			if err != nil {
				return outputError(err)
			}

			return output(c, out)
		},
	}
}

// Helper functions

// output writes v to the app writer in the selected format.
func output(c *cli.Context, v any) error {
	switch strings.ToLower(c.String("format")) {
	case config.FormatYAML:
		return outputYAML(c.App.Writer, v)
	case "", config.FormatJSON:
		return outputJSON(c.App.Writer, v)
	default:
		return outputError(errors.NewInvalidRequest(fmt.Sprintf("unknown output format: %q", c.String("format"))))
	}
}

// outputJSON marshals v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputYAML marshals v as YAML. Values go through JSON first so field
// names follow the json tags.
func outputYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

// outputError formats error for CLI.
func outputError(err error) error {
	var pErr *errors.PobError
	if stderrors.As(err, &pErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", pErr.Code, pErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads stdin up to limit bytes (0 means unlimited).
func readStdin(limit int64) (string, error) {
	var r io.Reader = os.Stdin
	if limit > 0 {
		r = io.LimitReader(os.Stdin, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return "", errors.NewInvalidRequest(fmt.Sprintf("input exceeds %d bytes", limit))
	}
	return strings.TrimSpace(string(data)), nil
}

// parseDuration parses "7d" format to days.
func parseDuration(s string) (int, error) {
	if numStr, ok := strings.CutSuffix(s, "d"); ok {
		days, err := strconv.Atoi(numStr)
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		if days < 0 {
			return 0, fmt.Errorf("duration must be non-negative")
		}
		return days, nil
	}
	return 0, fmt.Errorf("duration must end with 'd' (days), e.g., 7d")
}
