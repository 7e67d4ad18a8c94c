// Package export renders mind map snapshots and serves them for preview.
//
// This file implements a local gallery server for exported snapshots. It
// serves the export directory with no-cache headers, generates an index page
// listing every snapshot, and auto-opens the browser.
package export

import (
	"context"
	"fmt"
	"html"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"
)

// PreviewServer serves exported snapshots locally for previewing.
type PreviewServer struct {
	exportDir string
	port      int
	server    *http.Server
}

// NewPreviewServer creates a gallery server for the given export directory.
func NewPreviewServer(exportDir string, port int) *PreviewServer {
	return &PreviewServer{
		exportDir: exportDir,
		port:      port,
	}
}

// Start starts the gallery server and blocks until stopped.
func (p *PreviewServer) Start() error {
	if _, err := os.Stat(p.exportDir); os.IsNotExist(err) {
		return fmt.Errorf("export directory does not exist: %s", p.exportDir)
	}

	mux := http.NewServeMux()
	fs := http.FileServer(http.Dir(p.exportDir))
	mux.Handle("/files/", noCacheMiddleware(http.StripPrefix("/files/", fs)))
	mux.HandleFunc("/", p.indexHandler)
	mux.HandleFunc("/__preview__/status", p.statusHandler)

	p.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", p.port),
		Handler: mux,
	}

	return p.server.ListenAndServe()
}

// StartWithGracefulShutdown starts the server with signal handling for clean shutdown.
func (p *PreviewServer) StartWithGracefulShutdown() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := p.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return p.server.Shutdown(ctx)
	case err := <-errChan:
		return err
	}
}

// Stop gracefully stops the gallery server.
func (p *PreviewServer) Stop() error {
	if p.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.server.Shutdown(ctx)
}

// Port returns the port the server is running on.
func (p *PreviewServer) Port() int {
	return p.port
}

// URL returns the full URL of the gallery server.
func (p *PreviewServer) URL() string {
	return fmt.Sprintf("http://localhost:%d", p.port)
}

// snapshots lists exported snapshot files, newest first.
func (p *PreviewServer) snapshots() []os.FileInfo {
	entries, err := os.ReadDir(p.exportDir)
	if err != nil {
		return nil
	}
	var infos []os.FileInfo
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".svg") && !strings.HasSuffix(name, ".png") {
			continue
		}
		if info, err := e.Info(); err == nil {
			infos = append(infos, info)
		}
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ModTime().After(infos[j].ModTime())
	})
	return infos
}

// indexHandler generates the gallery page.
func (p *PreviewServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	fmt.Fprint(w, `<!doctype html><html><head><meta charset="utf-8">`)
	fmt.Fprint(w, `<title>mindcanvas snapshots</title>`)
	fmt.Fprint(w, `<style>body{background:#1e1f29;color:#f8f8f2;font-family:sans-serif;margin:2rem}`)
	fmt.Fprint(w, `a{color:#bd93f9}figure{margin:2rem 0}img{max-width:100%;border:1px solid #44475a}</style>`)
	fmt.Fprint(w, `</head><body><h1>Snapshots</h1>`)

	infos := p.snapshots()
	if len(infos) == 0 {
		fmt.Fprint(w, `<p>No snapshots exported yet.</p>`)
	}
	for _, info := range infos {
		name := html.EscapeString(info.Name())
		fmt.Fprintf(w, `<figure><figcaption><a href="/files/%s">%s</a> · %s</figcaption>`,
			name, name, info.ModTime().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, `<img src="/files/%s" alt="%s"></figure>`, name, name)
	}
	fmt.Fprint(w, `</body></html>`)
}

// statusHandler returns the gallery server status as JSON.
func (p *PreviewServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	fmt.Fprintf(w, `{"status":"running","port":%d,"export_dir":%q,"snapshot_count":%d}`,
		p.port, p.exportDir, len(p.snapshots()))
}

// noCacheMiddleware adds headers to prevent browser caching, so a re-export
// shows up on the next refresh.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort finds an available port in the given range.
func FindAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}

// Preview server port range; the first free port in range is used.
const (
	PreviewPortRangeStart = 9000
	PreviewPortRangeEnd   = 9100
)

// StartPreview serves the export directory on an auto-selected port,
// opens the browser, and blocks until interrupted.
func StartPreview(exportDir string) error {
	port, err := FindAvailablePort(PreviewPortRangeStart, PreviewPortRangeEnd)
	if err != nil {
		return fmt.Errorf("could not find available port: %w", err)
	}

	server := NewPreviewServer(exportDir, port)
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := OpenInBrowser(server.URL()); err != nil {
			fmt.Printf("Could not open browser: %v\n", err)
			fmt.Printf("Open %s in your browser\n", server.URL())
		}
	}()
	fmt.Printf("Snapshot gallery running at %s\n", server.URL())
	fmt.Printf("Serving: %s\n", exportDir)

	return server.StartWithGracefulShutdown()
}
