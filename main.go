package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"summaryfetcher/internal/config"
	"summaryfetcher/internal/coordinator"
	"summaryfetcher/internal/fetcher"
	"summaryfetcher/internal/lookup"
	"summaryfetcher/internal/summary"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Symbols come from the command line, falling back to the config file
	symbols := os.Args[1:]
	if len(symbols) == 0 {
		symbols = cfg.Symbols
	}
	if len(symbols) == 0 {
		log.Fatal("No symbols given. Usage: summaryfetcher SYMBOL [SYMBOL...]")
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	transport := []fetcher.Option{fetcher.WithTimeout(cfg.RequestTimeout)}
	if cfg.ProxyURL != "" {
		transport = append(transport, fetcher.WithProxy(cfg.ProxyURL))
	}

	coord := coordinator.New(
		lookup.NewClient(cfg.SearchBaseURL, transport),
		summary.NewLoader(fetcher.NewClient(transport...), cfg.QuoteBaseURL),
	)

	opts := coordinator.Options{
		UseFuzzySearch: cfg.UseFuzzySearch,
		PageNotFoundOK: cfg.PageNotFoundOK,
		WithThreads:    cfg.WithThreads,
		ThreadCount:    cfg.ThreadCount,
		ProgressBar:    cfg.ProgressBar,
	}

	fmt.Printf("Fetching summary data for %d symbols...\n", len(symbols))
	group, err := coord.FetchMany(ctx, symbols, opts)
	if err != nil {
		log.Fatalf("Batch fetch failed: %v", err)
	}
	if group == nil {
		fmt.Println("No summary data found.")
		return
	}

	group.Sort()
	printTable(group.Table())
}

// printTable writes the tabular projection to stdout, one aligned row per
// symbol.
func printTable(table *summary.Table) {
	if table == nil {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
