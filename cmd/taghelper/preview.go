package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/taghelper/internal/dev"
	"github.com/vango-dev/taghelper/pkg/emit"
	"github.com/vango-dev/taghelper/pkg/fragment"
	"github.com/vango-dev/taghelper/pkg/pool"
	"github.com/vango-dev/taghelper/pkg/registry"
)

func previewCmd() *cobra.Command {
	var (
		addr         string
		pagePath     string
		manifestPath string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve a page through the fragment buffer with live reload",
		Long: `Serves a page file over HTTP, streamed fragment by fragment, and
reloads connected browsers when the file changes on disk.

With --manifest, the manifest is watched too and exposed at /directives.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(pagePath); err != nil {
				return fmt.Errorf("page file: %w", err)
			}

			var reg *registry.Registry
			if manifestPath != "" {
				f, err := os.Open(manifestPath)
				if err != nil {
					return fmt.Errorf("opening manifest: %w", err)
				}
				reg, err = registry.LoadManifest(f, manifestPath)
				f.Close()
				if err != nil {
					return fmt.Errorf("loading manifest: %w", err)
				}
			}

			printBanner()
			return runPreview(cmd.Context(), addr, pagePath, manifestPath, reg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&pagePath, "page", "index.html", "page file to serve")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "directive manifest to watch and expose")
	return cmd
}

func runPreview(ctx context.Context, addr, pagePath, manifestPath string, reg *registry.Registry) error {
	bufPool := pool.NewInstrumented(pool.Default(),
		pool.WithSubsystem("preview"))
	tracer := emit.NewTracer()
	reload := dev.NewReloadServer()

	watched := []string{pagePath}
	if manifestPath != "" {
		watched = append(watched, manifestPath)
	}
	watcher := dev.NewWatcher(dev.WatcherConfig{Files: watched})
	watcher.OnChange(func(path string) {
		info("changed: %s", path)
		reload.NotifyReload(path)
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go watcher.Start(ctx)
	defer watcher.Stop()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		if err := servePage(req.Context(), w, pagePath, bufPool, tracer); err != nil {
			errorMsg("render: %v", err)
			reload.NotifyError(err.Error())
		}
	})
	r.Get("/_taghelper/reload", reload.HandleWebSocket)
	r.Handle("/metrics", promhttp.Handler())
	if reg != nil {
		r.Get("/directives", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(reg.Names())
		})
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		server.Shutdown(shutdownCtx)
	}()

	success("preview server listening on %s", addr)
	info("serving %s", pagePath)
	if manifestPath != "" {
		info("manifest %s (%d directives)", manifestPath, len(reg.Names()))
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// servePage streams the page file through a fragment buffer, with the
// live-reload client script spliced in before </body>.
func servePage(ctx context.Context, w http.ResponseWriter, pagePath string, p fragment.Pool, tracer *emit.Tracer) error {
	page, err := os.ReadFile(pagePath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}

	buf := fragment.NewBuffer(p)
	defer buf.Close()

	body := string(page)
	if i := strings.LastIndex(body, "</body>"); i >= 0 {
		buf.WriteString(body[:i])
		buf.WriteString(dev.ClientScript)
		buf.WriteString(body[i:])
	} else {
		buf.WriteString(body)
		buf.WriteString(dev.ClientScript)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tracer.Emit(ctx, buf, emit.NewStreamingSink(w))
}
