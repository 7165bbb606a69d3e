package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/bochang/recipebox/internal/cli"
	"github.com/bochang/recipebox/internal/logging"
	"github.com/bochang/recipebox/internal/offline"
	"github.com/bochang/recipebox/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Recipe store path." type:"path" default:"~/.config/recipebox/recipes.json"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Init       cli.InitCmd       `cmd:"" help:"Initialize recipebox storage with the starter recipes."`
	Tui        cli.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	List       cli.ListCmd       `cmd:"" help:"List recipes."`
	Show       cli.ShowCmd       `cmd:"" help:"Show a recipe, optionally scaled."`
	Star       cli.StarCmd       `cmd:"" help:"Toggle a recipe's favorite flag."`
	Add        cli.AddCmd        `cmd:"" help:"Add a new recipe."`
	Edit       cli.EditCmd       `cmd:"" help:"Edit an existing recipe."`
	Salt       cli.SaltCmd       `cmd:"" help:"Calculate salt concentration."`
	Containers cli.ContainersCmd `cmd:"" help:"List container tare weights or compute a net weight."`
	Backup     cli.BackupCmd     `cmd:"" help:"Create, list, or restore store backups."`
	Doctor     cli.DoctorCmd     `cmd:"" help:"Run diagnostics on the store."`
	Serve      cli.ServeCmd      `cmd:"" help:"Run the offline-first gateway for the deployed app."`
	Cache      struct {
		Clear   cli.CacheClearCmd   `cmd:"" help:"Delete every cache bucket."`
		Refresh cli.CacheRefreshCmd `cmd:"" help:"Refetch all static assets into the cache."`
		Size    cli.CacheSizeCmd    `cmd:"" help:"Report total cached bytes."`
	} `cmd:"" help:"Manage the offline cache."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("recipebox"),
		kong.Description("Personal recipe manager with an offline-first cache"),
		kong.UsageOnError(),
		kong.Vars{
			"version":       "v0.1.0",
			"cache_version": offline.DefaultVersion,
		},
	)

	level := slog.LevelInfo
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	log := logging.New(os.Stderr, level)

	appCtx := &cli.Context{
		Store:     storage.NewJSONStore(CLI.Config, log),
		Log:       log,
		CachePath: filepath.Join(filepath.Dir(CLI.Config), "offline-cache.db"),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
