// Command submissionctl drives the submission admin API from a terminal.
//
//	submissionctl upload <file.json>
//	submissionctl count
//	submissionctl filters
//	submissionctl list [-page N] [-page-size N] [-filter ID]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fadilmartias/submission-admin/internal/config"
	"github.com/fadilmartias/submission-admin/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.LoadClientConfig()
	api := service.NewSubmissionAPIService(cfg.BaseURL, cfg.Timeout)
	ctx := context.Background()

	if err := run(ctx, api, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("submissionctl: %v", err)
	}
}

func run(ctx context.Context, api service.SubmissionAPIServiceInterface, cmd string, args []string) error {
	switch cmd {
	case "upload":
		if len(args) != 1 {
			return fmt.Errorf("usage: submissionctl upload <file.json>")
		}
		res, err := api.Upload(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d submissions (batch %s)\n", res.Message, res.Count, res.BatchID)
		return nil

	case "count":
		n, err := api.Count(ctx)
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil

	case "filters":
		filters, err := api.Filters(ctx)
		if err != nil {
			return err
		}
		return printJSON(filters)

	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		page := fs.Int("page", 1, "page number")
		pageSize := fs.Int("page-size", 10, "submissions per page")
		filterID := fs.Uint("filter", 0, "saved filter id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		result, err := api.List(ctx, *page, *pageSize, *filterID)
		if err != nil {
			return err
		}
		return printJSON(result)

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: submissionctl <upload FILE | count | filters | list [-page N] [-page-size N] [-filter ID]>")
}
