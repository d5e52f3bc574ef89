// Package main provides the Lambda entry point for the StyleMatch API.
//
// It serves the same handler tree as stylematch-web behind API Gateway,
// with the catalog in DynamoDB and style images presigned from S3.
//
// Endpoints:
//
//	POST /api/search-products  — visual product search for a style
//	POST /api/analyze-style    — Gemini color/pattern analysis + ranking
//	GET  /api/styles           — filtered style listing
//	GET  /api/products         — catalog product listing
//	POST /api/users            — create a user profile
//	GET/POST /api/wishlist     — list / idempotently add wishlist items
//	DELETE /api/wishlist/{id}  — remove a wishlist item
//	GET  /api/health           — health check
package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/rs/zerolog/log"

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

func main() {
	logging.Init()
	start := time.Now()
	ctx := context.Background()

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}

	tableName := os.Getenv("STYLEMATCH_TABLE")
	if tableName == "" {
		log.Fatal().Msg("STYLEMATCH_TABLE is required")
	}

	keys := secrets.NewSource(ssm.NewFromConfig(cfg))
	detector := detect.NewClient(keys.KeyFunc(secrets.RoboflowKey), detect.DefaultMaxConcurrent)
	searcher := lens.NewClient(keys.KeyFunc(secrets.SerpKey))

	srv := &api.Server{
		Store:    catalog.NewDynamoStore(dynamodb.NewFromConfig(cfg), tableName),
		Pipeline: pipeline.New(detector, searcher),
		Resolver: &imageref.Resolver{Presign: s3.NewPresignClient(s3.NewFromConfig(cfg))},
	}

	if geminiKey, err := keys.Get(ctx, secrets.GeminiKey); err == nil {
		client, err := analysis.NewGeminiClient(ctx, geminiKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Gemini client")
		}
		srv.Analyzer = analysis.NewAnalyzer(client)
	} else {
		log.Warn().Err(err).Msg("Gemini key unavailable, style analysis disabled")
	}

	logging.NewStartupLogger("stylematch-lambda").
		DynamoTable("catalog", tableName).
		Feature("style_analysis", srv.Analyzer != nil).
		InitDuration(time.Since(start)).
		Log()

	adapter := httpadapter.NewV2(srv.Routes())
	lambda.Start(adapter.ProxyWithContext)
}
