package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"freqscore/pkg/batch"
	"freqscore/pkg/config"
	"freqscore/pkg/spectral"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "freqscore.yaml", "YAML configuration file (defaults are used if it does not exist)")
	root := flag.String("root", "", "Dataset root containing <split>/<label> directories (overrides config)")
	backend := flag.String("backend", "", fmt.Sprintf("DFT backend, one of %v (overrides config)", spectral.Backends()))
	summary := flag.Bool("summary", false, "Print per-section score statistics")
	verbose := flag.Bool("verbose", false, "Log progress to stderr")
	initConfig := flag.String("init-config", "", "Write a default configuration file to this path and exit")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("freqscore: ")

	if *initConfig != "" {
		if err := config.CreateDefaultConfigFile(*initConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *initConfig)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Command line values take precedence over the file
	if flag.NArg() > 0 {
		cfg.Dataset.Root = flag.Arg(0)
	}
	if *root != "" {
		cfg.Dataset.Root = *root
	}
	if *backend != "" {
		cfg.Scoring.Backend = *backend
	}
	if *summary {
		cfg.Output.Summary = true
	}
	if *verbose {
		cfg.Output.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	transform, err := spectral.NewTransform(cfg.Scoring.Backend)
	if err != nil {
		log.Fatalf("Failed to select transform: %v", err)
	}

	params := &batch.Params{
		Root:       cfg.Dataset.Root,
		Extensions: cfg.Dataset.Extensions,
		Sections:   cfg.Dataset.Sections,
		Summary:    cfg.Output.Summary,
		Verbose:    cfg.Output.Verbose,
	}

	if cfg.Output.Verbose {
		log.Printf("scoring %d sections under %s with %s", len(params.Sections), params.Root, transform.Name())
	}

	runner := batch.NewRunner(params, spectral.NewScorer(transform), os.Stdout)
	if err := runner.Run(); err != nil {
		log.Fatalf("Batch run failed: %v", err)
	}

	if cfg.Output.Verbose {
		log.Printf("scored %d files", len(runner.Results()))
	}
}
