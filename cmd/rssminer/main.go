// ABOUTME: Command-line interface for the RSS Miner feed discovery engine
// ABOUTME: Reads a URL list file, discovers feeds, and writes an OPML file

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"rssminer"
	loggerinfra "rssminer/infrastructure/logger/logrus"
	"rssminer/pkg/config"
)

var (
	inputPath   string
	outputPath  string
	rssOnly     bool
	atomOnly    bool
	quiet       bool
	concurrency int
	timeoutSecs int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rssminer",
		Short: "Finds RSS/Atom feeds from URLs and generates an OPML file",
		Long:  "Discovers the RSS and Atom feeds reachable from a list of web pages and exports them as an OPML subscription list.",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file containing URLs (one per line)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "feeds.opml", "Output OPML file path")
	rootCmd.Flags().BoolVar(&rssOnly, "rss-only", false, "Export only RSS feeds")
	rootCmd.Flags().BoolVar(&atomOnly, "atom-only", false, "Export only Atom feeds")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "Worker pool size (0 = available parallelism)")
	rootCmd.Flags().IntVarP(&timeoutSecs, "timeout", "t", 0, "Per-fetch timeout in seconds (0 = configured default)")
	rootCmd.MarkFlagRequired("input")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	if concurrency > 0 {
		cfg.Discovery.Concurrency = concurrency
	}
	if timeoutSecs > 0 {
		cfg.Discovery.FetchTimeoutSeconds = timeoutSecs
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if rssOnly && atomOnly {
		return fmt.Errorf("--rss-only and --atom-only are mutually exclusive")
	}

	urls, err := rssminer.ReadURLs(inputPath)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("Found %d URLs to process\n", len(urls))
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	feeds, statuses, err := client.FindFeedsParallel(context.Background(), urls, !quiet)
	if err != nil {
		return err
	}

	if !quiet {
		failed := 0
		for _, status := range statuses {
			if !status.Succeeded {
				failed++
			}
		}
		fmt.Printf("\nTotal feeds found: %d (%d of %d URLs had no feeds)\n", len(feeds), failed, len(urls))
	}

	if len(feeds) == 0 {
		fmt.Println("No feeds found. OPML file will not be created.")
		return nil
	}

	if err := writeOutput(feeds); err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("OPML file created: %s\n", outputPath)
	}
	return nil
}

func newClient(cfg *config.Config) (*rssminer.Client, error) {
	logger := loggerinfra.NewLogger()
	logger.SetLevel(cfg.Log.Level)

	options := []rssminer.Option{
		rssminer.WithLogger(logger),
		rssminer.WithConcurrency(cfg.Discovery.Concurrency),
		rssminer.WithFetchTimeout(time.Duration(cfg.Discovery.FetchTimeoutSeconds) * time.Second),
		rssminer.WithRateLimit(cfg.Discovery.RequestsPerSecond),
	}
	if quiet {
		options = append(options, rssminer.WithQuietMode())
	}

	return rssminer.NewClient(options...)
}

func writeOutput(feeds []rssminer.Feed) error {
	switch {
	case rssOnly:
		return rssminer.CreateOPMLFileRSSOnly(outputPath, feeds)
	case atomOnly:
		return rssminer.CreateOPMLFileAtomOnly(outputPath, feeds)
	default:
		return rssminer.CreateOPMLFile(outputPath, feeds)
	}
}
