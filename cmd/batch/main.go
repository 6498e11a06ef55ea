package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"address-resolver/internal/config"
	"address-resolver/internal/export"
	"address-resolver/internal/gateway"
	"address-resolver/internal/models"
	"address-resolver/internal/repository"
	"address-resolver/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	file := flag.String("file", "", "Path to a text file with one address per line")
	out := flag.String("out", "", "Output path (default stdout)")
	format := flag.String("format", "csv", "Output format: csv or json")
	confidence := flag.String("confidence", "", "Only export records with this confidence")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file flag is required")
		os.Exit(1)
	}

	f, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	filter := models.Confidence(*confidence)
	if filter != "" && !filter.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown confidence %q\n", *confidence)
		os.Exit(1)
	}

	lines, err := readLines(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var geocoder service.Geocoder
	if cfg.KakaoRestAPIKey != "" {
		cached, err := gateway.NewCachedGateway(
			gateway.NewKakaoClient(cfg.KakaoBaseURL, cfg.KakaoRestAPIKey, cfg.GatewayTimeout),
			cfg.GatewayCacheSize,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating gateway: %v\n", err)
			os.Exit(1)
		}
		geocoder = cached
	} else {
		fmt.Fprintln(os.Stderr, "Warning: KAKAO_REST_API_KEY not set, records will not be geocoded")
	}

	var store service.BatchStore
	if cfg.DBSource != "" {
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating schema: %v\n", err)
			os.Exit(1)
		}
		store = repo
	}

	orchestrator := service.NewOrchestrator(service.NewResolver(geocoder), cfg.BatchDelay)
	batches := service.NewBatchService(orchestrator, store)

	fmt.Fprintf(os.Stderr, "Resolving %d lines from %s\n", len(lines), *file)
	id, err := batches.Start(ctx, lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting batch: %v\n", err)
		os.Exit(1)
	}
	batches.Wait()

	run, err := batches.Get(ctx, id)
	if err != nil || run == nil {
		fmt.Fprintf(os.Stderr, "Error loading batch %s: %v\n", id, err)
		os.Exit(1)
	}

	if err := writeOutput(*out, f, export.Filter(run.Records, filter)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	s := run.Summary
	fmt.Fprintf(os.Stderr, "Batch %s done: %d records (high %d, medium %d, low %d, none %d)\n",
		id, len(run.Records), s.High, s.Medium, s.Low, s.None)
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return lines, nil
}

func writeOutput(path string, f export.Format, records []models.AddressRecord) error {
	var w io.Writer = os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		defer file.Close()
		w = file
	}
	return export.Write(w, f, records)
}
