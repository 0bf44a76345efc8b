package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"freetoolz-blueprint/internal/audit"
	"freetoolz-blueprint/internal/blueprint"
	"freetoolz-blueprint/internal/catalog"
	"freetoolz-blueprint/internal/classifier"
	"freetoolz-blueprint/internal/config"
	"freetoolz-blueprint/internal/ioformats"
	"freetoolz-blueprint/internal/models"
	"freetoolz-blueprint/internal/parser"
	"freetoolz-blueprint/internal/prerender"
	"freetoolz-blueprint/internal/sitemap"
	"freetoolz-blueprint/internal/store"
	"freetoolz-blueprint/pkg/logger"
)

func main() {
	configPath := flag.String("config", config.GetConfigPath(), "YAML config file")
	toolsDir := flag.String("tools", "", "directory of tool source files (overrides config)")
	in := flag.String("input", "", "identifier list (csv with 'tool' column or ndjson) instead of -tools")
	out := flag.String("output", "", "blueprint output file, '-' for stdout (overrides config)")
	format := flag.String("format", "", "output format: json or ndjson (overrides config)")
	catalogPath := flag.String("catalog", "", "YAML catalog overriding the built-in rules")
	sitemapPath := flag.String("sitemap", "", "write sitemap.xml to this path")
	robotsPath := flag.String("robots", "", "write robots.txt to this path")
	pagesDir := flag.String("pages", "", "write prerendered HTML pages under this directory")
	dbPath := flag.String("sqlite", "", "save the run to this SQLite database")
	runAudit := flag.Bool("audit", false, "audit the prerendered pages after writing them")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(2)
	}
	override(&cfg.ToolsDir, *toolsDir)
	override(&cfg.Output, *out)
	override(&cfg.Format, *format)
	override(&cfg.CatalogPath, *catalogPath)
	override(&cfg.Sitemap, *sitemapPath)
	override(&cfg.Robots, *robotsPath)
	override(&cfg.PagesDir, *pagesDir)
	override(&cfg.DBPath, *dbPath)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *runAudit && cfg.PagesDir == "" {
		fmt.Fprintln(os.Stderr, "-audit needs -pages")
		os.Exit(2)
	}

	l := logger.New()
	l.SetLevel(logger.ParseLevel(cfg.LogLevel))

	if err := run(context.Background(), l, cfg, *in, *runAudit); err != nil {
		l.Errorf("%v", err)
		os.Exit(1)
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func run(ctx context.Context, l *logger.Logger, cfg *config.Config, input string, runAudit bool) error {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		c, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		cat = c
	}
	if err := cat.Validate(); err != nil {
		return err
	}

	var (
		ids []string
		err error
	)
	if input != "" {
		ids, err = ioformats.ReadIdentifiers(input)
	} else {
		ids, err = ioformats.ListTools(cfg.ToolsDir, cfg.ToolExt)
	}
	if err != nil {
		return fmt.Errorf("read identifiers: %w", err)
	}
	l.Debugf("read %d identifiers", len(ids))

	gen := blueprint.New(cat, cfg.Site)
	records, report, err := gen.Build(ids)
	if err != nil {
		return err
	}
	for _, id := range report.Degenerate {
		l.Warnf("identifier %q has an empty slug; its page path collapses to /tools/", id)
	}

	if err := writeOutput(l, cfg, records); err != nil {
		return err
	}
	l.Infof("generated SEO blueprint for %d tools", report.Tools)

	now := time.Now()
	if cfg.Sitemap != "" {
		set := sitemap.Build(records, cfg.StaticPages, cfg.Site.BaseURL, now)
		n, err := ioformats.WriteFile(cfg.Sitemap, set.Write)
		if err != nil {
			return fmt.Errorf("write sitemap: %w", err)
		}
		l.Infof("wrote %s (%d urls, %s)", cfg.Sitemap, len(set.URLs), humanize.Bytes(uint64(n)))
	}
	if cfg.Robots != "" {
		n, err := ioformats.WriteFile(cfg.Robots, func(w io.Writer) error {
			return sitemap.WriteRobots(w, cfg.Site.BaseURL, cfg.Site.Brand, now, cfg.RobotsPolicy)
		})
		if err != nil {
			return fmt.Errorf("write robots: %w", err)
		}
		l.Infof("wrote %s (%s)", cfg.Robots, humanize.Bytes(uint64(n)))
	}
	if cfg.PagesDir != "" {
		n, err := prerender.WriteAll(cfg.PagesDir, records, cfg.Site)
		if err != nil {
			return fmt.Errorf("prerender: %w", err)
		}
		l.Infof("prerendered %d pages under %s", n, cfg.PagesDir)
	}
	if cfg.DBPath != "" {
		if err := saveRun(ctx, cfg.DBPath, records, l); err != nil {
			return err
		}
	}
	if runAudit {
		return auditPages(l, cat, cfg.PagesDir, records)
	}
	return nil
}

func writeOutput(l *logger.Logger, cfg *config.Config, records []models.ContentRecord) error {
	write := func(w io.Writer) error { return ioformats.WriteRecords(w, records, cfg.Format) }
	if cfg.Output == "-" {
		return write(os.Stdout)
	}
	n, err := ioformats.WriteFile(cfg.Output, write)
	if err != nil {
		return fmt.Errorf("write blueprint: %w", err)
	}
	abs, _ := filepath.Abs(cfg.Output)
	l.Infof("wrote %s (%s)", abs, humanize.Bytes(uint64(n)))
	return nil
}

func saveRun(ctx context.Context, path string, records []models.ContentRecord, l *logger.Logger) error {
	st, err := store.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	id, err := st.SaveRun(ctx, records)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	l.Infof("saved run %s to %s", id, path)
	return nil
}

func auditPages(l *logger.Logger, cat *catalog.Catalog, dir string, records []models.ContentRecord) error {
	reports, err := audit.New(parser.New(), classifier.New(cat)).CheckDir(dir, records)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	failed := 0
	enc := json.NewEncoder(os.Stdout)
	for _, r := range reports {
		if len(r.Issues) == 0 {
			continue
		}
		_ = enc.Encode(r)
		if r.Errors() > 0 {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("audit: %d of %d pages have errors", failed, len(reports))
	}
	l.Infof("audit passed for %d pages", len(reports))
	return nil
}
