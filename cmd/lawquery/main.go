// Command lawquery classifies a single query from the command line and
// prints the resolved domain with its statute sections. No database or
// feedback loop is involved.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/classifier"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/config"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/data"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/statutes"
)

func main() {
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	configPath := flag.String("config", "", "optional config file for classification settings")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	clf := classifier.New(
		data.Exemplars(),
		data.KeywordRules(),
		data.SubdomainRules(),
		nil,
		classifier.Config{
			Version:       cfg.Service.Version,
			MinConfidence: cfg.Classification.MinConfidenceThreshold,
			ForcedFloor:   cfg.Classification.ForcedScoreFloor,
		},
		logger.NewNop(),
		nil,
	)

	idx, err := statutes.NewIndex(data.Sections(), data.Articles())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build statute index: %v\n", err)
		os.Exit(1)
	}

	result := clf.Classify(context.Background(), query)

	if *asJSON {
		printJSON(result, idx)
		return
	}
	printText(result, idx)
}

func printJSON(result *domain.ClassificationResult, idx *statutes.Index) {
	out := struct {
		*domain.ClassificationResult

		Sections []domain.StatuteSection      `json:"sections"`
		Articles []domain.ConstitutionArticle `json:"articles"`
	}{ClassificationResult: result}

	if result.EnumerateAll {
		out.Sections = idx.AllSections()
		out.Articles = idx.AllArticles()
	} else if result.Domain != domain.DomainUnknown {
		out.Sections = idx.SectionsFor(result.Domain, result.Subdomain)
		out.Articles = idx.ArticlesFor(result.Domain)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
}

func printText(result *domain.ClassificationResult, idx *statutes.Index) {
	fmt.Printf("domain:     %s\n", result.Domain)
	fmt.Printf("subdomain:  %s\n", result.Subdomain)
	fmt.Printf("confidence: %.3f\n", result.Confidence)
	fmt.Printf("method:     %s\n", result.Method)
	if len(result.MatchedKeywords) > 0 {
		fmt.Printf("keywords:   %s\n", strings.Join(result.MatchedKeywords, ", "))
	}

	if result.EnumerateAll {
		fmt.Println("\nno query given; known domains:")
		for _, alt := range result.Alternatives {
			fmt.Printf("  %s\n", alt.Domain)
		}
		return
	}
	if result.Domain == domain.DomainUnknown {
		return
	}

	sections := idx.SectionsFor(result.Domain, result.Subdomain)
	if len(sections) > 0 {
		fmt.Println("\napplicable sections:")
		for _, s := range sections {
			fmt.Printf("  %s %s: %s\n", strings.ToUpper(s.Code), s.ID, s.Title)
		}
	}
	for _, a := range idx.ArticlesFor(result.Domain) {
		fmt.Printf("  Article %s: %s\n", a.Article, a.Title)
	}
}
