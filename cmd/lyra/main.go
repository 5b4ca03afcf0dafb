package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spec-kit/lyra/internal/client/api"
	"github.com/spec-kit/lyra/internal/client/assess"
	"github.com/spec-kit/lyra/internal/client/cli"
	"github.com/spec-kit/lyra/internal/client/storage/boltdb"
)

func main() {
	serverURL := flag.String("server", envOr("LYRA_SERVER_URL", "http://localhost:8080"), "backend base URL")
	dbPath := flag.String("db", envOr("LYRA_DB_PATH", defaultDBPath()), "local session database path")
	modelPath := flag.String("model", envOr("LYRA_MODEL_PATH", "model.json"), "bundled classifier model path")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close()
	}()

	// The model is only needed by assess; a missing file must not break the
	// auth commands.
	var classifier assess.Classifier
	if clf, err := assess.LoadLinearClassifier(*modelPath); err == nil {
		classifier = clf
	}

	app := cli.New(api.NewClient(*serverURL), store, classifier)
	app.Run(ctx, args[0], args[1:])
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lyra.db"
	}
	return filepath.Join(home, ".lyra", "lyra.db")
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
