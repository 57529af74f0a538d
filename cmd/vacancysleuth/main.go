package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"

	"github.com/go-resty/resty/v2"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/client"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/config"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/scraper"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/ui"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/utils"
)

// options holds the parsed command line flags
type options struct {
	terms      string
	configFile string
	envFile    string
	source     string
	debug      bool
	noProgress bool
}

// printExamples displays usage examples for the program
func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\nvacancysleuth usage examples")
	fmt.Fprintln(w, "\n1. Compare the default languages on HeadHunter and SuperJob (needs SUPERJOB_TOKEN):")
	fmt.Fprintln(w, "   vacancysleuth")
	fmt.Fprintln(w, "\n2. Only HeadHunter, for a custom set of languages:")
	fmt.Fprintln(w, "   vacancysleuth -source hh -terms \"Go,Rust,Kotlin\"")
	fmt.Fprintln(w, "\n3. Read languages and region ids from a YAML file, with debug logs:")
	fmt.Fprintln(w, "   vacancysleuth -config terms.yaml -debug")
	fmt.Fprintln(w, "\n4. Take the SuperJob token from a custom dotenv file and hide the banner:")
	fmt.Fprintln(w, "   vacancysleuth -env ~/.vacancysleuth.env -silence")
}

func main() {
	opts := options{}
	flag.StringVar(&opts.terms, "terms", "", "Comma separated search terms (overrides config)")
	flag.StringVar(&opts.configFile, "config", "", "YAML file with terms and per-source settings")
	flag.StringVar(&opts.envFile, "env", ".env", "Dotenv file to load before reading the environment")
	flag.StringVar(&opts.source, "source", utils.SourceAll, "Source to query (hh, sj, all)")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.noProgress, "no-progress", false, "Disable page progress bars")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(os.Stderr, *silence || *noBanner)

	if *examples {
		printExamples(os.Stdout)
		return
	}

	logger := ui.NewLogger(opts.debug, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger, os.Stdout); err != nil {
		logger.Error("run failed", logger.Args("error", err))
		stop()
		os.Exit(1)
	}
}

// run fetches every selected source and, only when all of them succeed,
// prints one table per source to out.
func run(ctx context.Context, opts options, logger *pterm.Logger, out io.Writer) error {
	if !utils.IsValidSource(opts.source) {
		return fmt.Errorf("invalid source %q: must be one of hh, sj, all", opts.source)
	}
	sources := utils.ExpandSources(opts.source)

	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return err
	}
	if err := cfg.Validate(slices.Contains(sources, utils.SourceSuperJob)); err != nil {
		return err
	}

	logger.Debug("config loaded", logger.Args("terms", cfg.SearchTerms, "sources", sources, "timeout", cfg.Timeout))

	httpClient := client.New(client.Options{
		Timeout:    cfg.Timeout,
		RetryCount: cfg.RetryCount,
		ProxyURL:   cfg.ProxyURL,
		UserAgent:  cfg.UserAgent,
	})

	var progress scraper.Progress = scraper.NopProgress{}
	if !opts.noProgress {
		progress = ui.NewBarProgress(os.Stderr)
	}

	reports := make([]models.Report, 0, len(sources))
	for _, name := range sources {
		src := newSource(name, cfg, httpClient, progress, logger)

		logger.Info("downloading vacancies", logger.Args("source", src.Title()))
		sets, err := scraper.Collect(ctx, src, cfg.SearchTerms)
		if err != nil {
			return err
		}
		logger.Info("vacancies downloaded", logger.Args("source", src.Title(), "terms", len(sets)))

		reports = append(reports, utils.Summarize(src.Title(), sets, src.Currency()))
	}

	for _, report := range reports {
		if err := ui.PrintReport(out, report); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(ctx context.Context, opts options) (*config.Config, error) {
	cfg, err := config.Load(ctx, opts.envFile)
	if err != nil {
		return nil, err
	}

	if opts.configFile != "" {
		fc, err := config.LoadFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg.Apply(fc)
	}

	if terms := utils.ParseTerms(opts.terms); len(terms) > 0 {
		cfg.SearchTerms = terms
	}
	return cfg, nil
}

func newSource(name string, cfg *config.Config, c *resty.Client, progress scraper.Progress, logger *pterm.Logger) scraper.Source {
	if name == utils.SourceSuperJob {
		return scraper.NewSuperJob(c, scraper.SuperJobConfig{
			URL:         cfg.SuperJob.URL,
			Title:       cfg.SuperJob.Title,
			Token:       cfg.SuperJobToken,
			CatalogueID: cfg.SuperJob.CatalogueID,
			TownID:      cfg.SuperJob.TownID,
			PerPage:     cfg.PerPage,
		}, progress, logger)
	}
	return scraper.NewHeadHunter(c, scraper.HeadHunterConfig{
		URL:      cfg.HeadHunter.URL,
		Title:    cfg.HeadHunter.Title,
		RoleID:   cfg.HeadHunter.RoleID,
		AreaID:   cfg.HeadHunter.AreaID,
		PerPage:  cfg.PerPage,
		MinFound: cfg.HeadHunter.MinFound,
	}, progress, logger)
}
