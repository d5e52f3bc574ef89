// Package main seeds the DynamoDB catalog table with the curated styles
// and showcase products. Safe to re-run: writes are full-item upserts.
package main

import (
	"context"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nkapoor/stylematch/internal/catalog"
	"github.com/nkapoor/stylematch/internal/logging"
)

var tableFlag string

var rootCmd = &cobra.Command{
	Use:   "seed-styles",
	Short: "Seed the StyleMatch catalog table",
	Long: `Seed Styles writes the curated styles and showcase products into the
DynamoDB catalog table used by stylematch-lambda.

Examples:
  seed-styles --table stylematch-catalog`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().StringVar(&tableFlag, "table", os.Getenv("STYLEMATCH_TABLE"), "DynamoDB catalog table")
	rootCmd.MarkFlagRequired("table")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMain(cmd *cobra.Command, args []string) {
	logging.Init()
	ctx := context.Background()

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}
	store := catalog.NewDynamoStore(dynamodb.NewFromConfig(cfg), tableFlag)

	for _, style := range catalog.SeedStyles() {
		if err := store.PutStyle(ctx, &style); err != nil {
			log.Fatal().Err(err).Str("style_id", style.ID).Msg("Failed to seed style")
		}
		log.Info().Str("style_id", style.ID).Str("name", style.Name).Msg("Seeded style")
	}
	for _, product := range catalog.SeedProducts() {
		if err := store.PutProduct(ctx, &product); err != nil {
			log.Fatal().Err(err).Str("product_id", product.ID).Msg("Failed to seed product")
		}
		log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("Seeded product")
	}

	log.Info().
		Int("styles", len(catalog.SeedStyles())).
		Int("products", len(catalog.SeedProducts())).
		Str("table", tableFlag).
		Msg("Catalog seeded")
}
