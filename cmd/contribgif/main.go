package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/codegangsta/cli"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/kevin-cantwell/contribgif"
	"github.com/kevin-cantwell/contribgif/internal/logging"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "error loading .env: %v\n", err)
		os.Exit(1)
	}

	app := newApp(func(cfg contribgif.Config) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return contribgif.Run(ctx, cfg, os.Stdout)
	})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDotEnv reads path into the environment if it exists. Values already in
// the real environment win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// newApp binds every flag to its environment variable and hands the resulting
// config to run. A failed run exits 1 with the error printed to stderr.
func newApp(run func(cfg contribgif.Config) error) *cli.App {
	defaults := contribgif.DefaultConfig()

	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "contribgif"
	app.Usage = "Renders a GitHub contribution calendar as an animated gif."
	app.UsageText = "USERNAME=octocat GITHUB_TOKEN=... contribgif [options]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "username,u",
			Usage:  "GitHub `LOGIN` whose calendar is drawn.",
			EnvVar: contribgif.EnvUsername,
		},
		cli.StringFlag{
			Name:   "token",
			Usage:  "GitHub API `TOKEN`. Prefer the environment variable.",
			EnvVar: contribgif.EnvToken,
		},
		cli.StringFlag{
			Name:   "output,o",
			Usage:  "`PATH` of the gif to write.",
			Value:  defaults.Output,
			EnvVar: "OUTPUT",
		},
		cli.StringFlag{
			Name:   "svg",
			Usage:  "Also write the static grid as svg to `PATH`.",
			EnvVar: "SVG_OUTPUT",
		},
		cli.StringFlag{
			Name:   "motion,m",
			Usage:  "`MOTION` = walk draws a strolling alien, hop a bouncing pixel invader.",
			Value:  defaults.Motion,
			EnvVar: "MOTION",
		},
		cli.IntFlag{
			Name:   "frames,f",
			Usage:  "`FRAMES` per loop, at least 2.",
			Value:  defaults.Frames,
			EnvVar: "FRAMES",
		},
		cli.DurationFlag{
			Name:   "delay,d",
			Usage:  "`DELAY` each frame is shown for.",
			Value:  defaults.Delay,
			EnvVar: "FRAME_DELAY",
		},
		cli.Float64Flag{
			Name:   "glow,g",
			Usage:  "`SIGMA` of the glow blurred under the character. 0 disables it.",
			EnvVar: "GLOW",
		},
		cli.StringFlag{
			Name:   "title,t",
			Usage:  "`TITLE` drawn above the grid.",
			EnvVar: "TITLE",
		},
		cli.BoolFlag{
			Name:   "preview,p",
			Usage:  "Prints the grid to the terminal as braille.",
			EnvVar: "PREVIEW",
		},
		cli.BoolFlag{
			Name:   "play",
			Usage:  "Plays the finished animation in the terminal as braille.",
			EnvVar: "PREVIEW_ANIMATION",
		},
		cli.StringFlag{
			Name:   "endpoint",
			Usage:  "GraphQL `URL`.",
			Value:  defaults.Endpoint,
			EnvVar: "GITHUB_GRAPHQL_URL",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "`LEVEL` is one of trace, debug, info, warn, error or none.",
			Value:  "info",
			EnvVar: "LOG_LEVEL",
		},
	}
	app.Before = func(c *cli.Context) error {
		logging.Setup(os.Stderr, c.String("log-level"))
		return nil
	}
	app.Action = func(c *cli.Context) error {
		cfg := contribgif.Config{
			Username:         c.String("username"),
			Token:            c.String("token"),
			Endpoint:         c.String("endpoint"),
			Output:           c.String("output"),
			SVGOutput:        c.String("svg"),
			Motion:           c.String("motion"),
			Frames:           c.Int("frames"),
			Delay:            c.Duration("delay"),
			Glow:             c.Float64("glow"),
			Title:            c.String("title"),
			Preview:          c.Bool("preview"),
			PreviewAnimation: c.Bool("play"),
		}

		if err := run(cfg); err != nil {
			log.Error().Err(err).Msg("failed to generate animation")
			return cli.NewExitError("contribgif: "+err.Error(), 1)
		}
		return nil
	}
	return app
}
