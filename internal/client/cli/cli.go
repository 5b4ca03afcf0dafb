package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spec-kit/lyra/internal/client/api"
	"github.com/spec-kit/lyra/internal/client/assess"
	"github.com/spec-kit/lyra/internal/client/storage"
)

// Cli dispatches client commands.
type Cli struct {
	apiClient  *api.Client
	sessions   storage.SessionStore
	classifier assess.Classifier
	in         *bufio.Reader
	out        io.Writer
}

// New builds the command dispatcher.
func New(apiClient *api.Client, sessions storage.SessionStore, classifier assess.Classifier) *Cli {
	return &Cli{
		apiClient:  apiClient,
		sessions:   sessions,
		classifier: classifier,
		in:         bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

// Run executes one command.
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error
	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "whoami":
		err = c.runWhoami(ctx)
	case "assess":
		err = c.runAssess(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// PrintUsage prints the command summary.
func PrintUsage() {
	fmt.Fprintln(os.Stderr, `Usage: lyra [flags] <command>

Commands:
  register   create an account and store the session token
  login      authenticate and store the session token
  logout     discard the stored session token
  status     show whether a valid session is stored
  whoami     fetch the authenticated profile from the server
  assess     enter five wellness scores and classify them

Flags:
  -server    backend base URL (default http://localhost:8080)
  -db        local session database path
  -model     bundled classifier model path`)
}
