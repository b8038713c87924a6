package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"moving-quote-agent/internal/di"
	"moving-quote-agent/internal/domain/entity"
	"moving-quote-agent/internal/infrastructure/env"
)

func main() {
	company := flag.String("company", "QuickMove Pro", "moving company to contact")
	headless := flag.Bool("headless", false, "run the browser without a visible window")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run deadline")
	flag.Parse()

	envService := env.NewEnvService()

	fmt.Println("Describe your move (name, contacts, origin, destination, date):")
	reader := bufio.NewReader(os.Stdin)
	text, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Fatal("empty request")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg := di.LoadSchedulerConfig(envService)
	cfg.Headless = *headless

	container, err := di.NewSchedulerContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}

	// os.Exit skips deferred calls, so Close runs before the exit code is
	// acted on: the browser and logger must be released on every path.
	code := run(ctx, container, *company, text)
	container.Close()
	if code != 0 {
		os.Exit(code)
	}
}

func run(ctx context.Context, container *di.SchedulerContainer, company, text string) int {
	container.Narrator.Step("Understanding your request")
	extracted, err := container.Extraction.Extract(ctx, text)
	if err != nil {
		container.Narrator.Failure("%v", err)
		return 1
	}
	for _, warning := range extracted.Warnings {
		container.Narrator.Warn("%s", warning)
	}

	outcome, err := container.Scheduler.Schedule(ctx, company, extracted.Profile)
	if err != nil {
		container.Narrator.Failure("%v", err)
		return 1
	}

	fmt.Println()
	switch {
	case outcome.Submitted && outcome.Status == entity.SubmissionConfirmed:
		container.Narrator.Success("Request submitted to %s and confirmed.", company)
	case outcome.Submitted:
		container.Narrator.Warn("Request submitted to %s, confirmation unclear: %s", company, outcome.Reason)
	default:
		container.Narrator.Failure("Could not submit the request: %s", outcome.Reason)
		return 1
	}
	return 0
}
