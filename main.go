package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/resume/internal/career"
	"github.com/Zachkp/resume/internal/resume"
	"github.com/Zachkp/resume/internal/site"
)

type CLI struct {
	Verbose     bool   `short:"v" help:"Enable verbose logging" env:"VERBOSE"`
	Resume      string `help:"Résumé YAML file; the embedded copy is used when empty" env:"RESUME_FILE"`
	CareerStart string `help:"Career start date (YYYY-MM-DD), overrides the résumé" env:"CAREER_START"`
	Timezone    string `help:"Time zone that decides the current date" env:"TZ_NAME" default:"Asia/Seoul"`

	Serve struct {
		Port    string `help:"Port to listen on" env:"PORT" default:"8080"`
		Release bool   `help:"Run gin in release mode" env:"GIN_RELEASE"`
	} `cmd:"" default:"1" help:"Serve the résumé page"`

	Tenure struct {
		Start string `help:"Start date (YYYY-MM-DD); defaults to the configured career start"`
		Now   string `help:"Evaluate at this date (YYYY-MM-DD) instead of today"`
	} `cmd:"" help:"Print the career duration label"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("resume"),
		kong.Description("Personal résumé site with a live career duration label."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	switch ctx.Command() {
	case "serve":
		err = runServe(&cli)
	case "tenure":
		err = runTenure(&cli, os.Stdout)
	}
	if err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}

func loadResume(cli *CLI) (*resume.Resume, error) {
	var (
		r   *resume.Resume
		err error
	)
	if cli.Resume != "" {
		r, err = resume.Load(cli.Resume)
	} else {
		r, err = resume.Default()
	}
	if err != nil {
		return nil, err
	}
	if cli.CareerStart != "" {
		r.Career.Start = cli.CareerStart
	}
	return r, nil
}

func newFormatter(timezone, start string, clock func() time.Time) (*career.Formatter, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", timezone, err)
	}
	f, err := career.NewFormatter(start, career.WithLocation(loc), career.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("career start: %w", err)
	}
	return f, nil
}

func runServe(cli *CLI) error {
	r, err := loadResume(cli)
	if err != nil {
		return err
	}
	f, err := newFormatter(cli.Timezone, r.Career.Start, time.Now)
	if err != nil {
		return err
	}

	s, err := site.New(r, f, site.Options{Release: cli.Serve.Release, Logger: slog.Default()})
	if err != nil {
		return err
	}

	r.PrintBanner(os.Stdout)
	if label, err := f.Label(); err != nil {
		slog.Warn("Career duration unavailable", "start", r.Career.Start, "error", err)
	} else {
		slog.Info("Career duration", "start", r.Career.Start, "label", label)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return s.Run(ctx, ":"+cli.Serve.Port)
}

func runTenure(cli *CLI, out io.Writer) error {
	start := cli.Tenure.Start
	if start == "" {
		r, err := loadResume(cli)
		if err != nil {
			return err
		}
		start = r.Career.Start
	}

	clock, timezone := time.Now, cli.Timezone
	if cli.Tenure.Now != "" {
		now, err := career.ParseDate(cli.Tenure.Now)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
		clock = func() time.Time { return now }
		// A fixed date is already a calendar day; read it back in UTC.
		timezone = "UTC"
	}

	f, err := newFormatter(timezone, start, clock)
	if err != nil {
		return err
	}
	label, err := f.Label()
	if errors.Is(err, career.ErrInvalidRange) {
		return fmt.Errorf("start date %s is in the future: %w", start, err)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, label)
	return err
}
