// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/worklens"
	"github.com/poiesic/worklens/ai"
	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/ingest"
	"github.com/poiesic/worklens/reembed"
	"github.com/poiesic/worklens/tag"
)

func main() {
	app := &cli.App{
		Name:  "worklens",
		Usage: "Copyright status inference for creative works",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load candidate works into the catalog",
				Action: seedCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:    "src",
						Aliases: []string{"s"},
						Usage:   "JSON file of works to load (default: built-in sample catalog)",
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search the catalog for a title",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of ranked results",
						Value: 10,
					},
				),
			},
			{
				Name:      "tag",
				Usage:     "Resolve a title and print its smart copyright tag",
				ArgsUsage: "QUERY",
				Action:    tagCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:    "jurisdiction",
						Aliases: []string{"j"},
						Usage:   "Jurisdiction code (US, EU, UK, CA, AU, JP, IN)",
					},
					&cli.BoolFlag{
						Name:  "compact",
						Usage: "Print the one-line tag form",
					},
				),
			},
			{
				Name:   "train",
				Usage:  "Record a confirmed title selection with its verified status",
				Action: trainCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "The query the user typed",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "The title the user confirmed",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Verified status (public_domain, expired, active, ...)",
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Regenerate title embeddings for every work in the catalog",
				Action: reembedCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of works per embedding batch",
						Value: 100,
					},
				),
			},
			{
				Name:   "stats",
				Usage:  "Show catalog and model statistics",
				Action: statsCommand,
				Flags:  databaseFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL (enables semantic matching)",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
		},
	}
}

func openDatabase(c *cli.Context) (*worklens.Database, error) {
	var opts []worklens.DatabaseOption
	if c.String("embedding-model") != "" {
		configOpts := []ai.ConfigOption{ai.WithEmbeddingModel(c.String("embedding-model"))}
		if host := c.String("embedding-host"); host != "" {
			configOpts = append(configOpts, ai.WithEmbeddingHost(host))
		}
		aiConfig := ai.NewConfig(configOpts...)
		if err := aiConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid AI configuration: %w", err)
		}
		opts = append(opts, worklens.WithAIConfig(aiConfig))
	}

	db, err := worklens.NewDatabase(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// sampleCatalog is the built-in seed set used when no source file is
// given. It spans the status spectrum so a fresh install produces
// interesting tags immediately.
var sampleCatalog = []*core.Work{
	{Title: "Pride and Prejudice", Creator: "Jane Austen", PublicationYear: 1813, CreatorDeathYear: 1817, ContentType: core.ContentTypeBook, SourceName: "sample", SourceConfidence: 0.95},
	{Title: "Romeo and Juliet", Creator: "William Shakespeare", PublicationYear: 1597, CreatorDeathYear: 1616, ContentType: core.ContentTypeBook, SourceName: "sample", SourceConfidence: 0.95},
	{Title: "A Tale of Two Cities", Creator: "Charles Dickens", PublicationYear: 1859, CreatorDeathYear: 1870, ContentType: core.ContentTypeBook, SourceName: "sample", SourceConfidence: 0.95},
	{Title: "The Adventures of Sherlock Holmes", Creator: "Arthur Conan Doyle", PublicationYear: 1892, CreatorDeathYear: 1930, ContentType: core.ContentTypeBook, SourceName: "sample", SourceConfidence: 0.9},
	{Title: "Symphony No. 5", Creator: "Ludwig van Beethoven", PublicationYear: 1808, CreatorDeathYear: 1827, ContentType: core.ContentTypeMusic, SourceName: "sample", SourceConfidence: 0.9},
	{Title: "The Great Gatsby", Creator: "F. Scott Fitzgerald", PublicationYear: 1925, CreatorDeathYear: 1940, ContentType: core.ContentTypeBook, SourceName: "sample", SourceConfidence: 0.9},
	{Title: "Metropolis", Creator: "Fritz Lang", PublicationYear: 1927, CreatorDeathYear: 1976, ContentType: core.ContentTypeFilm, SourceName: "sample", SourceConfidence: 0.85},
	{Title: "Harry Potter and the Philosopher's Stone", Creator: "J.K. Rowling", PublicationYear: 1997, ContentType: core.ContentTypeBook, SourceName: "sample", SourceConfidence: 0.9},
	{Title: "Spirited Away", Creator: "Hayao Miyazaki", PublicationYear: 2001, ContentType: core.ContentTypeFilm, SourceName: "sample", SourceConfidence: 0.9},
	{Title: "1989", Creator: "Taylor Swift", PublicationYear: 2014, ContentType: core.ContentTypeMusic, SourceName: "sample", SourceConfidence: 0.9},
}

// seedWork is the JSON shape accepted by the seed command.
type seedWork struct {
	Title            string  `json:"title"`
	Creator          string  `json:"creator,omitempty"`
	PublicationYear  int     `json:"publication_year,omitempty"`
	CreatorDeathYear int     `json:"creator_death_year,omitempty"`
	ContentType      string  `json:"content_type,omitempty"`
	SourceName       string  `json:"source_name,omitempty"`
	SourceConfidence float64 `json:"source_confidence,omitempty"`
	Corporate        bool    `json:"corporate,omitempty"`
	Anonymous        bool    `json:"anonymous,omitempty"`
}

func worksFromFile(filename string) ([]*core.Work, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var rows []seedWork
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	works := make([]*core.Work, 0, len(rows))
	for _, row := range rows {
		if row.Title == "" {
			return nil, fmt.Errorf("seed entry without a title in %s", filename)
		}
		works = append(works, &core.Work{
			Title:            row.Title,
			Creator:          row.Creator,
			PublicationYear:  row.PublicationYear,
			CreatorDeathYear: row.CreatorDeathYear,
			ContentType:      core.CanonicalContentType(row.ContentType),
			SourceName:       row.SourceName,
			SourceConfidence: row.SourceConfidence,
			Corporate:        row.Corporate,
			Anonymous:        row.Anonymous,
		})
	}
	return works, nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	works := sampleCatalog
	if src := c.String("src"); src != "" {
		var err error
		works, err = worksFromFile(src)
		if err != nil {
			return err
		}
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var pipelineOpts []ingest.Option
	if db.Embedder() != nil {
		pipelineOpts = append(pipelineOpts, ingest.WithEmbedder(db.Embedder()))
	}
	pipeline, err := ingest.NewPipeline(db.WorkRepository(), pipelineOpts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	added, err := pipeline.Ingest(ctx, works...)
	if err != nil {
		return fmt.Errorf("failed to seed works: %w", err)
	}
	pipeline.Wait()

	// Creating an engine seeds the jurisdiction table and bootstraps
	// the model on first run.
	engine, err := db.NewEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	fmt.Printf("Seeded %d works\n", len(added))
	return nil
}

func reembedCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if db.Embedder() == nil {
		return fmt.Errorf("reembed requires an embedding backend; set --embedding-model")
	}

	config := reembed.DefaultConfig()
	config.BatchSize = c.Int("batch-size")

	reembedder := reembed.NewReembedder(db.WorkRepository(), db.Embedder(), config, os.Stderr)
	return reembedder.Run(context.Background())
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("search requires a query argument")
	}
	query := strings.Join(c.Args().Slice(), " ")

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	engine, err := db.NewEngine(ctx, worklens.WithMaxResults(c.Int("max-results")))
	if err != nil {
		return err
	}
	defer engine.Close()

	ranking, err := engine.Search(ctx, query)
	if err != nil {
		return err
	}

	fmt.Println(ranking.Explanation)
	for i, m := range ranking.Results {
		creator := m.Work.Creator
		if creator == "" {
			creator = "unknown creator"
		}
		fmt.Printf("%d: %q by %s (%d) [%.3f]\n", i+1, m.Work.Title, creator, m.Work.PublicationYear, m.Score)
	}
	if len(ranking.Suggestions) > 0 {
		fmt.Printf("Suggestions: %s\n", strings.Join(ranking.Suggestions, "; "))
	}
	return nil
}

func tagCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("tag requires a query argument")
	}
	query := strings.Join(c.Args().Slice(), " ")

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	engine, err := db.NewEngine(ctx, worklens.WithJurisdiction(c.String("jurisdiction")))
	if err != nil {
		return err
	}
	defer engine.Close()

	smartTag, err := engine.Resolve(ctx, query)
	if err != nil {
		return err
	}

	if c.Bool("compact") {
		fmt.Println(tag.Compact(smartTag))
		return nil
	}

	fmt.Printf("%s %s\n", smartTag.StatusEmoji, smartTag.StatusText)
	fmt.Printf("Title:        %s\n", smartTag.Title)
	if smartTag.Creator != "" {
		fmt.Printf("Creator:      %s\n", smartTag.Creator)
	}
	if smartTag.PublicationYear != 0 {
		fmt.Printf("Published:    %d\n", smartTag.PublicationYear)
	}
	fmt.Printf("Jurisdiction: %s\n", smartTag.Jurisdiction)
	fmt.Printf("Expiry:       %s\n", smartTag.ExpiryTimeline)
	fmt.Printf("Confidence:   %.0f%% (%s)\n", smartTag.ConfidenceScore*100, smartTag.ConfidenceLevel)
	fmt.Printf("Risk:         %s\n", smartTag.RiskLevel)
	fmt.Println("Allowed uses:")
	for _, use := range smartTag.AllowedUsesSummary {
		fmt.Printf("  %s\n", use)
	}
	fmt.Printf("\n%s\n\n%s\n", smartTag.AIReasoning, smartTag.Disclaimer)
	return nil
}

func trainCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	engine, err := db.NewEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	var status core.CopyrightStatus
	if s := c.String("status"); s != "" {
		status = core.ParseStatus(s)
	}

	if err := engine.Feedback(ctx, c.String("query"), c.String("title"), status); err != nil {
		return err
	}

	trainerStatus := engine.ModelStatus()
	fmt.Printf("Recorded feedback; %d examples pending, %d trained\n",
		trainerStatus.Pending, trainerStatus.Model.SampleCount)
	return nil
}

func statsCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	engine, err := db.NewEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	titles, err := db.WorkRepository().ListTitles(ctx)
	if err != nil {
		return err
	}
	rows, err := db.JurisdictionRepository().ListJurisdictions(ctx)
	if err != nil {
		return err
	}

	status := engine.ModelStatus()
	fmt.Printf("Works:            %d\n", len(titles))
	fmt.Printf("Jurisdictions:    %d\n", len(rows))
	fmt.Printf("Model samples:    %d\n", status.Model.SampleCount)
	fmt.Printf("Rolling accuracy: %.2f\n", status.Model.RollingAccuracy)
	fmt.Printf("Pending examples: %d\n", status.Pending)
	if !status.Model.LastTrained.IsZero() {
		fmt.Printf("Last trained:     %s\n", status.Model.LastTrained.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
