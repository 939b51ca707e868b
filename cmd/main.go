// One-shot query runner: answers a single question from the command
// line and exits. Handy for scripting and for inspecting the manual
// loop's tool transcript without the interactive prompt.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ebalda/wayfarer/bootstrap"
	"github.com/ebalda/wayfarer/config"
	appctx "github.com/ebalda/wayfarer/context"
	"github.com/ebalda/wayfarer/log"
	"github.com/ebalda/wayfarer/tools"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	query, ok := queryFromArgs(os.Args[1:])
	if !ok {
		fmt.Fprintln(os.Stderr, `usage: query "<question>"`)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Init("info")
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}
	log.Init(cfg.Log.Level)

	ctx := appctx.WithRequestID(context.Background(), appctx.NewRequestID())

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Setup failed: %v", err)
	}

	answer, err := app.Assistant.Answer(ctx, query)
	if err != nil {
		log.Fatalf(ctx, "Query failed: %v", err)
	}

	fmt.Println(answer)

	// The manual agent records every tool call it made; dump the
	// transcript so the run can be inspected.
	if agent, ok := app.Assistant.(*tools.Agent); ok && len(agent.Transcript()) > 0 {
		transcript, err := agent.TranscriptJSON()
		if err != nil {
			log.Errorf(ctx, "Failed to export transcript: %v", err)
			return
		}
		fmt.Println("\n=== TOOL CALLS ===")
		fmt.Println(string(transcript))
	}
}

// queryFromArgs joins the command line arguments into a single query.
func queryFromArgs(args []string) (string, bool) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return "", false
	}
	return query, true
}
