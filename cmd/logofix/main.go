package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/logofix"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "logofix"
	app.Usage = "Rewrites logo PNGs in place as 8-bit RGBA."
	app.UsageText = "logofix [options]\n\n" +
		"   With no options, searches the working directory for:\n" +
		"     **/breakpointlogo.png\n" +
		"     **/assets/**/logo*.png\n" +
		"     **/images/**/logo*.png"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "dir,d",
			Usage: "`DIR` to search instead of the working directory.",
		},
		cli.StringSliceFlag{
			Name:  "pattern,p",
			Usage: "Glob `PATTERN` to match, ** spans directories. Repeat for more. Replaces the defaults.",
		},
		cli.StringFlag{
			Name:  "config,c",
			Usage: "YAML `FILE` with dir, patterns, optimize, hidden, dry_run, preview and fit settings. Flags win over the file.",
		},
		cli.BoolFlag{
			Name:  "dry-run,n",
			Usage: "Only print what would be fixed.",
		},
		cli.BoolFlag{
			Name:  "fast",
			Usage: "Use default zlib compression instead of the smallest output.",
		},
		cli.BoolFlag{
			Name:  "hidden",
			Usage: "Let wildcards match dotfiles and dot-directories.",
		},
		cli.BoolFlag{
			Name:  "preview",
			Usage: "Print a braille preview of each fixed logo.",
		},
		cli.StringFlag{
			Name:  "fit,f",
			Usage: "`FIT` = 80,25 scales previews down to fit 80 columns and 25 lines. Defaults to the terminal size.",
		},
		cli.BoolFlag{
			Name:  "confirm,i",
			Usage: "Ask before overwriting each file.",
		},
	}
	app.Action = func(c *cli.Context) error {
		cfg := &logofix.Config{}
		if path := c.String("config"); path != "" {
			loaded, err := logofix.LoadConfig(path)
			if err != nil {
				exit(err.Error(), 1)
			}
			cfg = loaded
		}
		applyFlags(c, cfg)
		if err := cfg.Validate(); err != nil {
			exit(err.Error(), 1)
		}

		cols, lines := previewSize()
		opts, err := cfg.Options(cols, lines)
		if err != nil {
			exit(err.Error(), 1)
		}
		if c.Bool("confirm") {
			opts = append(opts, logofix.WithConfirm(confirmOverwrite))
		}

		// Per-file failures are already printed and don't change the exit code.
		if err := logofix.New(os.Stdout, opts...).Run(); err != nil {
			exit(err.Error(), 1)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// applyFlags overrides config file values with flags given on the command line.
func applyFlags(c *cli.Context, cfg *logofix.Config) {
	if c.IsSet("dir") {
		cfg.Dir = c.String("dir")
	}
	if c.IsSet("pattern") {
		cfg.Patterns = c.StringSlice("pattern")
	}
	if c.IsSet("dry-run") {
		cfg.DryRun = c.Bool("dry-run")
	}
	if c.IsSet("fast") {
		optimize := !c.Bool("fast")
		cfg.Optimize = &optimize
	}
	if c.IsSet("hidden") {
		cfg.Hidden = c.Bool("hidden")
	}
	if c.IsSet("preview") {
		cfg.Preview = c.Bool("preview")
	}
	if c.IsSet("fit") {
		cfg.Fit = c.String("fit")
	}
}

// previewSize is the terminal size less a line for the prompt.
func previewSize() (cols, lines int) {
	cols, lines, err := term.GetSize(os.Stdout.Fd())
	if err != nil || cols < 1 || lines < 2 {
		return 80, 25 // Small, but a pretty standard default
	}
	return cols, lines - 1
}

func confirmOverwrite(path string) (bool, error) {
	overwrite := true
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Overwrite %s?", path)).
		Affirmative("Yes").
		Negative("Skip").
		Value(&overwrite).
		Run()
	if err != nil {
		return false, err
	}
	return overwrite, nil
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
