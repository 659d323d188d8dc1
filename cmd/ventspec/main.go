package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"ventspec/internal/config"
	"ventspec/internal/patterns"
	"ventspec/internal/pipeline"
	"ventspec/internal/server"
	"ventspec/internal/source"
	"ventspec/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "serve":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		addr := fs.String("addr", cfg.ListenAddr, "listen address")
		_ = fs.Parse(os.Args[2:])

		set, err := patterns.Load(cfg.PatternsPath)
		must(err)
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		engine := makeEngine(cfg, log)
		if engine != nil {
			defer engine.Close()
		}
		reader := source.NewReader(cfg.OCRCharThreshold, engine, log)
		service := pipeline.NewService(set, cfg.FittingsWindow, log)

		srv := server.New(cfg, db, reader, service, log)
		log.Info("listening", "addr", *addr)
		must(srv.Run(*addr))
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input PDF path")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" || strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--input and --out are required"))
		}

		set, err := patterns.Load(cfg.PatternsPath)
		must(err)

		content, err := os.ReadFile(*input)
		must(err)

		engine := makeEngine(cfg, log)
		if engine != nil {
			defer engine.Close()
		}
		reader := source.NewReader(cfg.OCRCharThreshold, engine, log)
		extraction, err := reader.Read(content)
		must(err)

		service := pipeline.NewService(set, cfg.FittingsWindow, log)
		result := service.Process(extraction)
		must(pipeline.ExportRowsToXLSX(result.Rows, *out))

		encoded, err := json.MarshalIndent(result.Summary, "", "  ")
		must(err)
		fmt.Println(string(encoded))
		fmt.Printf("exported %d rows to %s\n", len(result.Rows), *out)
	case "patterns:check":
		set, err := patterns.ParseFile(cfg.PatternsPath)
		must(err)
		fmt.Printf("patterns ok: equipment=%d fittings=%d round=%d rect=%d\n",
			len(set.Equipment), len(set.Fittings), len(set.Round), len(set.Rect))
	default:
		usage()
		os.Exit(1)
	}
}

func makeEngine(cfg config.Config, log *slog.Logger) source.Engine {
	if !cfg.OCREnabled {
		return nil
	}
	engine, err := source.NewTesseractEngine(cfg.OCRLanguages)
	if err != nil {
		log.Warn("ocr engine unavailable, continuing without ocr", "error", err)
		return nil
	}
	return engine
}

func usage() {
	fmt.Println(`usage: ventspec <command> [flags]

commands:
  serve            start the HTTP API
  run              process one PDF: --input drawing.pdf --out spec.xlsx
  patterns:check   validate the pattern configuration`)
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
