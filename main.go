package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sectorenricher/internal/aggregator"
	"sectorenricher/internal/cache"
	"sectorenricher/internal/classifier"
	"sectorenricher/internal/config"
	"sectorenricher/internal/loader"
	"sectorenricher/internal/merger"
	"sectorenricher/internal/openai"
	"sectorenricher/internal/pipeline"
	"sectorenricher/internal/ratelimit"
	"sectorenricher/internal/util"
	"sectorenricher/internal/writer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		companiesPath string
		changesPath   string
		outCSVPath    string
		outSummary    string
	)

	cmd := &cobra.Command{
		Use:          "sectorenricher",
		Short:        "Enrich a company list with LLM-classified sectors and YTD performance",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg, companiesPath, changesPath, outCSVPath, outSummary)
		},
	}

	cmd.Flags().StringVar(&companiesPath, "companies", "", "path to the company-list CSV (ticker,name,headquarters)")
	cmd.Flags().StringVar(&changesPath, "price-changes", "", "path to the price-change CSV (ticker,ytd_change)")
	cmd.Flags().StringVar(&outCSVPath, "out-csv", "data/output/enriched.csv", "path for the enriched CSV output")
	cmd.Flags().StringVar(&outSummary, "out-summary", "data/output/summary.txt", "path for the sector summary output")
	cmd.Flags().String("model", "gpt-4o-mini", "completion model identifier")
	cmd.MarkFlagRequired("companies")
	cmd.MarkFlagRequired("price-changes")

	return cmd
}

func run(cfg *config.Config, companiesPath, changesPath, outCSVPath, outSummaryPath string) error {
	log := util.NewLogger(cfg.LogLevel)

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An interrupt stops new classification calls; rows classified so
	// far are still flushed to the outputs.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Warn().Msg("received interrupt, finishing with rows classified so far")
		cancel()
	}()

	companies, err := loader.LoadCompanies(companiesPath)
	if err != nil {
		return err
	}
	changes, err := loader.LoadPriceChanges(changesPath)
	if err != nil {
		return err
	}

	merged := merger.Merge(companies, changes)
	log.Info().
		Int("companies", len(companies)).
		Int("price_changes", len(changes)).
		Int("merged", len(merged)).
		Msg("inputs merged")

	cls := openai.NewClient(cfg.OpenAIAPIKey, cfg.Model, cfg.OpenAIBaseURL, classifier.RetryConfig{
		Count:       cfg.RetryCount,
		WaitTime:    cfg.RetryWaitTime,
		MaxWaitTime: cfg.RetryMaxWaitTime,
	}, cfg.RequestTimeout, log)

	opts := []pipeline.Option{pipeline.WithWorkers(cfg.Workers)}
	if cfg.CachePath != "" {
		opts = append(opts, pipeline.WithCache(cache.NewStore(cfg.CachePath)))
	}

	p := pipeline.New(cls, ratelimit.New(cfg.RequestsPerSecond), log, opts...)
	result := p.Run(ctx, merged)

	summaries := aggregator.Summarize(result.Rows)

	if err := writer.WriteEnriched(outCSVPath, result.Rows); err != nil {
		return err
	}
	if err := writer.WriteSummary(outSummaryPath, summaries, result.Warnings); err != nil {
		return err
	}

	if result.Warnings > 0 {
		log.Warn().
			Int("unclassified", result.Warnings).
			Str("out_csv", outCSVPath).
			Str("out_summary", outSummaryPath).
			Msg("run finished with unclassified rows")
	} else {
		log.Info().
			Str("out_csv", outCSVPath).
			Str("out_summary", outSummaryPath).
			Msg("run finished")
	}
	return nil
}
