package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"group-deal-engine/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// Applies pending migrations from ./migrations with the atlas CLI.
// migrations/atlas.sum must be regenerated with `atlas migrate hash` after editing a migration.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "atlas binary")
	flag.Parse()

	var db config.DBConfig
	if err := envconfig.Process("", &db); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(*dir)),
	)
	if err != nil {
		slog.Error("failed to prepare migration dir", "error", err)
		os.Exit(1)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), *bin)
	if err != nil {
		slog.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: db.BuildDSN(),
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
}
