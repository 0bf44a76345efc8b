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

	"freetoolz-blueprint/internal/config"
	"freetoolz-blueprint/internal/indexnow"
	"freetoolz-blueprint/internal/ioformats"
	"freetoolz-blueprint/pkg/logger"
)

func main() {
	configPath := flag.String("config", config.GetConfigPath(), "YAML config file")
	blueprintPath := flag.String("blueprint", "", "blueprint file to read tool URLs from (default: config output)")
	keygen := flag.Bool("keygen", false, "generate a new key file in -keydir and exit")
	keyDir := flag.String("keydir", "public", "directory the key file is written to with -keygen")
	dryRun := flag.Bool("dry-run", false, "print the payloads instead of submitting them")
	flag.Parse()

	l := logger.New()

	if *keygen {
		key := indexnow.NewKey()
		path := filepath.Join(*keyDir, key+".txt")
		if _, err := ioformats.WriteFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, key)
			return err
		}); err != nil {
			l.Errorf("write key file: %v", err)
			os.Exit(1)
		}
		l.Infof("wrote %s; set INDEXNOW_KEY=%s", path, key)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(2)
	}
	l.SetLevel(logger.ParseLevel(cfg.LogLevel))

	if *blueprintPath == "" {
		*blueprintPath = cfg.Output
	}
	records, err := ioformats.ReadRecords(*blueprintPath)
	if err != nil {
		l.Errorf("read blueprint: %v", err)
		os.Exit(1)
	}

	urls := []string{cfg.Site.BaseURL + "/"}
	for _, r := range records {
		if r.Slug != "" {
			urls = append(urls, r.URL)
		}
	}

	payloads, err := indexnow.BuildPayloads(cfg.Site.BaseURL, cfg.IndexNow.Key, cfg.KeyLocation(), urls)
	if err != nil {
		l.Errorf("%v (run with -keygen first)", err)
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if *dryRun {
		_ = enc.Encode(payloads)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	client := indexnow.NewClient(30*time.Second, 5*time.Second)
	results := client.Submit(ctx, cfg.IndexNow.Endpoints, payloads)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
			l.Errorf("%s: %s", r.Endpoint, r.Error)
			continue
		}
		l.Infof("%s accepted %d urls (HTTP %d)", r.Endpoint, r.URLs, r.Status)
	}
	_ = enc.Encode(results)
	if len(results) > 0 && failed == len(results) {
		os.Exit(1)
	}
}
