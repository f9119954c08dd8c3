package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/seer/internal/config"
	"github.com/hpungsan/seer/internal/errors"
	"github.com/hpungsan/seer/internal/ops"
	"github.com/hpungsan/seer/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "seer",
		Usage:   "Compile text descriptions into Excalidraw wireframes",
		Version: Version,
		Commands: []*cli.Command{
			generateCmd(db, cfg, baseDir),
			runsCmd(db),
			latestCmd(db),
			serveCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// generateCmd creates the generate command.
func generateCmd(db *sql.DB, cfg *config.Config, baseDir string) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate a wireframe document from a text description",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Screen description (alternatively pipe via stdin)"},
			&cli.StringFlag{Name: "spec", Aliases: []string{"f"}, Usage: "Read the description from a file"},
			&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Usage: "Canvas preset: mobile|desktop|tablet (inferred when omitted)"},
			&cli.StringFlag{Name: "size", Usage: "Explicit canvas size as WxH (e.g. 1280x720)"},
			&cli.StringFlag{Name: "theme", Usage: "Color theme: classic|high_contrast|blueprint"},
			&cli.StringFlag{Name: "fidelity", Usage: "Rendering fidelity: low|medium|high"},
			&cli.Int64Flag{Name: "seed", Usage: "Deterministic seed (derived from inputs when omitted)"},
			&cli.StringFlag{Name: "library", Usage: "Path to an .excalidrawlib fragment catalog"},
			&cli.BoolFlag{Name: "no-library", Usage: "Skip the fragment library, use primitive shapes only"},
			&cli.BoolFlag{Name: "no-strict", Usage: "Skip scene validation before writing"},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Run name (drives the output file slug)"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output path ('-' writes the document to stdout)"},
			&cli.BoolFlag{Name: "labels", Usage: "Caption each screen boundary with its name"},
			&cli.BoolFlag{Name: "json", Usage: "Print run metadata as JSON instead of a summary line"},
		},
		Action: func(c *cli.Context) error {
			text, err := resolveText(c)
			if err != nil {
				return outputError(err)
			}

			input := ops.GenerateInput{
				Text:        text,
				Preset:      pickString(c.String("preset"), cfg.Preset),
				Size:        c.String("size"),
				Theme:       pickString(c.String("theme"), cfg.Theme),
				Fidelity:    pickString(c.String("fidelity"), cfg.Fidelity),
				LibraryPath: pickString(c.String("library"), cfg.LibraryPath),
				NoLibrary:   c.Bool("no-library"),
				Strict:      !c.Bool("no-strict"),
				Name:        c.String("name"),
				OutFile:     c.String("out"),
				OutDir:      resolveOutDir(cfg, baseDir),
				ShowLabels:  c.Bool("labels"),
			}
			if c.IsSet("seed") {
				seed := c.Int64("seed")
				input.Seed = &seed
			}

			output, err := ops.Generate(db, input)
			if err != nil {
				return outputError(err)
			}

			for _, warning := range output.Warnings {
				fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
			}

			if output.OutPath == "-" {
				_, err := os.Stdout.Write(output.Document)
				return err
			}
			if c.Bool("json") {
				return outputJSON(output)
			}
			fmt.Printf("wrote %s (%d screens, seed %d)\n",
				output.OutPath, len(output.Meta.Screens), output.Seed)
			return nil
		},
	}
}

// runsCmd creates the runs command.
func runsCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "List recorded generations, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "slug", Aliases: []string{"s"}, Usage: "Filter by slug"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum runs to return"},
			&cli.BoolFlag{Name: "latest", Usage: "Show only the most recent run"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("latest") {
				output, err := ops.Latest(db, ops.LatestInput{Slug: c.String("slug")})
				if err != nil {
					return outputError(err)
				}
				return outputJSON(output)
			}
			output, err := ops.Runs(db, ops.RunsInput{
				Slug:  c.String("slug"),
				Limit: c.Int("limit"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// latestCmd creates the latest command.
func latestCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "latest",
		Usage: "Show the most recent run",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "slug", Aliases: []string{"s"}, Usage: "Scope to a slug"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Latest(db, ops.LatestInput{Slug: c.String("slug")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the run viewer web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 7609, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(db, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// resolveText picks the prompt text: --text, then --spec, then piped stdin.
func resolveText(c *cli.Context) (string, error) {
	if c.String("text") != "" && c.String("spec") != "" {
		return "", errors.NewInvalidRequest("--text and --spec are mutually exclusive")
	}
	if text := c.String("text"); text != "" {
		return text, nil
	}
	if path := c.String("spec"); path != "" {
		if path == "-" {
			return readStdin()
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.NewInvalidRequest(fmt.Sprintf("cannot read spec file: %v", err))
		}
		return string(data), nil
	}
	if stdinHasData() {
		return readStdin()
	}
	return "", errors.NewInvalidRequest("no description given: use --text, --spec, or pipe via stdin")
}

// resolveOutDir picks the output directory: SEER_OUT_DIR, then config,
// then the base directory.
func resolveOutDir(cfg *config.Config, baseDir string) string {
	if dir := os.Getenv("SEER_OUT_DIR"); dir != "" {
		return dir
	}
	if cfg != nil && cfg.OutDir != "" {
		return cfg.OutDir
	}
	return baseDir
}

// pickString returns value if non-empty, else fallback.
func pickString(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI. Usage errors exit 2, everything
// else exits 1.
func outputError(err error) error {
	if sErr, ok := err.(*errors.SeerError); ok {
		status := sErr.Status
		if status == 0 {
			status = 1
		}
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), status)
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

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
