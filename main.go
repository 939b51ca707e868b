package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ebalda/wayfarer/bootstrap"
	"github.com/ebalda/wayfarer/config"
	appctx "github.com/ebalda/wayfarer/context"
	"github.com/ebalda/wayfarer/log"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// 0. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Init("info")
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}

	// Initialize logging
	log.Init(cfg.Log.Level)

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C (SIGINT)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info(context.Background(), "\nProgram terminated externally. Exiting...")
		cancel()
	}()

	// 1-3. Init App Components using Bootstrap
	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(context.Background(), "Setup failed: %v", err)
	}

	printWelcome()

	// 4. Interactive query loop
	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Print("\nWhat would you like to know? ")
		if !scanner.Scan() {
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if isExit(input) {
			fmt.Println("Thank you for using the Weather & Distance Assistant. Goodbye!")
			return
		}

		queryCtx := appctx.WithRequestID(ctx, appctx.NewRequestID())
		log.Infof(queryCtx, "Received query: %s", input)

		fmt.Println("Processing your request...")

		answer, err := app.Assistant.Answer(queryCtx, input)
		if err != nil {
			log.Errorf(queryCtx, "Error processing query: %v", err)
			fmt.Printf("Sorry, I encountered an error: %v\n", err)
			fmt.Println("Please try again with a different query.")
			continue
		}

		fmt.Printf("\n%s\n", answer)
	}
}

func printWelcome() {
	fmt.Println("Welcome to the Weather & Distance Multi-Agent App!")
	fmt.Println("This app can provide weather information and calculate distances between cities.")
	fmt.Println("Type 'exit' to quit.")
	fmt.Println()
	fmt.Println("Example queries:")
	fmt.Println("- What's the weather like in London?")
	fmt.Println("- How far is Barcelona from Madrid?")
	fmt.Println("- What's the weather in Tokyo and how far is it from New York?")
}

func isExit(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		return true
	}
	return false
}
