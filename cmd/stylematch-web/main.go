// Package main runs the StyleMatch API as a local web server.
//
// By default it serves the seeded in-memory catalog so the full product
// search flow works without any AWS setup; pass --table to back the
// catalog with DynamoDB instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nkapoor/stylematch/internal/analysis"
	"github.com/nkapoor/stylematch/internal/api"
	"github.com/nkapoor/stylematch/internal/catalog"
	"github.com/nkapoor/stylematch/internal/detect"
	"github.com/nkapoor/stylematch/internal/imageref"
	"github.com/nkapoor/stylematch/internal/lens"
	"github.com/nkapoor/stylematch/internal/logging"
	"github.com/nkapoor/stylematch/internal/pipeline"
	"github.com/nkapoor/stylematch/internal/secrets"
)

// CLI flags
var (
	portFlag  int
	tableFlag string
	localFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "stylematch-web",
	Short: "StyleMatch API server",
	Long: `StyleMatch Web serves the fashion recommendation API: curated styles,
visual product search against each style's photo, Gemini style analysis,
and wishlist plumbing.

Examples:
  stylematch-web
  stylematch-web --port 9090
  stylematch-web --table stylematch-catalog`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().IntVar(&portFlag, "port", 8080, "Port to listen on")
	rootCmd.Flags().StringVar(&tableFlag, "table", os.Getenv("STYLEMATCH_TABLE"), "DynamoDB catalog table (empty = seeded in-memory store)")
	rootCmd.Flags().BoolVar(&localFlag, "local", false, "Skip AWS entirely: no SSM key fallback, no S3 presigning")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMain(cmd *cobra.Command, args []string) {
	logging.Init()
	start := time.Now()
	ctx := context.Background()

	var (
		ssmClient *ssm.Client
		resolver  *imageref.Resolver

		store catalog.Store = catalog.NewSeededMemoryStore()
	)
	if !localFlag {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load AWS config")
		}
		ssmClient = ssm.NewFromConfig(cfg)
		resolver = &imageref.Resolver{Presign: s3.NewPresignClient(s3.NewFromConfig(cfg))}
		if tableFlag != "" {
			store = catalog.NewDynamoStore(dynamodb.NewFromConfig(cfg), tableFlag)
		}
	}

	keys := secrets.NewSource(ssmClient)
	detector := detect.NewClient(keys.KeyFunc(secrets.RoboflowKey), detect.DefaultMaxConcurrent)
	searcher := lens.NewClient(keys.KeyFunc(secrets.SerpKey))

	srv := &api.Server{
		Store:    store,
		Pipeline: pipeline.New(detector, searcher),
		Resolver: resolver,
	}

	// Style analysis is optional: the server runs without a Gemini key,
	// only the analyze-style endpoint is disabled.
	if geminiKey, err := keys.Get(ctx, secrets.GeminiKey); err == nil {
		client, err := analysis.NewGeminiClient(ctx, geminiKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Gemini client")
		}
		srv.Analyzer = analysis.NewAnalyzer(client)
	} else {
		log.Warn().Err(err).Msg("Gemini key unavailable, style analysis disabled")
	}

	logging.NewStartupLogger("stylematch-web").
		DynamoTable("catalog", tableFlag).
		Feature("dynamo_catalog", tableFlag != "").
		Feature("style_analysis", srv.Analyzer != nil).
		Config("port", fmt.Sprintf("%d", portFlag)).
		InitDuration(time.Since(start)).
		Log()

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", portFlag),
		Handler:      srv.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpSrv.Shutdown(ctx)
	}()

	log.Info().Int("port", portFlag).Msg("Starting web server")
	fmt.Printf("\n  StyleMatch API: http://localhost:%d\n\n", portFlag)

	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
