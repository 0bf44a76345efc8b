package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freetoolz-blueprint/internal/api"
	"freetoolz-blueprint/internal/blueprint"
	"freetoolz-blueprint/internal/catalog"
	"freetoolz-blueprint/internal/config"
	"freetoolz-blueprint/internal/ioformats"
	"freetoolz-blueprint/internal/scheduler"
	"freetoolz-blueprint/internal/store"
	"freetoolz-blueprint/pkg/logger"
)

func main() {
	configPath := flag.String("config", config.GetConfigPath(), "YAML config file")
	flag.Parse()

	l := logger.New()
	cfg, err := config.Load(*configPath)
	if err != nil {
		l.Errorf("load config: %v", err)
		os.Exit(2)
	}
	l.SetLevel(logger.ParseLevel(cfg.LogLevel))

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if cat, err = catalog.LoadFile(cfg.CatalogPath); err != nil {
			l.Errorf("load catalog: %v", err)
			os.Exit(1)
		}
	}
	if err := cat.Validate(); err != nil {
		l.Errorf("%v", err)
		os.Exit(1)
	}

	var st *store.Store
	if cfg.DBPath != "" {
		st, err = store.Open(context.Background(), cfg.DBPath)
		if err != nil {
			l.Errorf("open store: %v", err)
			os.Exit(1)
		}
		defer st.Close()
	}

	gen := blueprint.New(cat, cfg.Site)
	h := api.New(gen, l, api.Options{StaticPages: cfg.StaticPages, RobotsPolicy: cfg.RobotsPolicy})

	regenerate := func() {
		if err := refresh(context.Background(), cfg, gen, h, st, l); err != nil {
			l.Errorf("regenerate: %v", err)
		}
	}
	regenerate()

	var sched *scheduler.Scheduler
	if cfg.Server.Regenerate != "" {
		sched, err = scheduler.New(cfg.Server.Timezone)
		if err == nil {
			err = sched.Schedule(cfg.Server.Regenerate, regenerate)
		}
		if err != nil {
			l.Errorf("scheduler: %v", err)
			os.Exit(1)
		}
		sched.Start()
		l.Infof("regeneration scheduled (%s), next run %s", cfg.Server.Regenerate, sched.NextRun().Format(time.RFC3339))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      h.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	err = serve(srv, l, stop)
	if sched != nil {
		sched.Stop()
	}
	if err != nil {
		l.Errorf("%v", err)
		if st != nil {
			st.Close()
		}
		os.Exit(1)
	}
	l.Infof("bye")
}

// serve runs srv until a signal arrives on stop or the listener fails, then
// shuts it down.
func serve(srv *http.Server, l *logger.Logger, stop <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		l.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	l.Infof("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// refresh rebuilds the blueprint from the tools directory and swaps it in.
// On failure the previously served records stay in place.
func refresh(ctx context.Context, cfg *config.Config, gen *blueprint.Generator, h *api.Handler, st *store.Store, l *logger.Logger) error {
	ids, err := ioformats.ListTools(cfg.ToolsDir, cfg.ToolExt)
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}
	records, report, err := gen.Build(ids)
	if err != nil {
		return err
	}
	for _, id := range report.Degenerate {
		l.Warnf("identifier %q has an empty slug", id)
	}
	h.Replace(records)
	if st != nil {
		id, err := st.SaveRun(ctx, records)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		l.Debugf("saved run %s", id)
	}
	l.Infof("serving blueprint for %d tools", report.Tools)
	return nil
}
