package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/plotline/plotline/internal/docs"
	"github.com/plotline/plotline/pkg/cache"
	"github.com/plotline/plotline/pkg/observability"
	"github.com/plotline/plotline/pkg/pipeline"
	"github.com/plotline/plotline/pkg/plot"
)

// defaultSeed is the sample-data seed used when a request carries none.
const defaultSeed = 1

// serverConfig holds the serve command settings, loadable from a TOML
// file via --config.
type serverConfig struct {
	Addr     string  `toml:"addr"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	CacheDir string  `toml:"cache_dir"`
	CacheTTL int     `toml:"cache_ttl_seconds"`
}

// defaultServerConfig returns the built-in settings: listen on :8080
// at the library's default chart size, with no render cache.
func defaultServerConfig() serverConfig {
	return serverConfig{
		Addr:     ":8080",
		Width:    plot.DefaultWidth,
		Height:   plot.DefaultHeight,
		CacheTTL: 300,
	}
}

// loadServerConfig reads the config file when path is non-empty,
// applying the file's values over the defaults.
func loadServerConfig(path string) (serverConfig, error) {
	cfg := defaultServerConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newServeCmd creates the serve command running the documentation
// server: an index of all examples, one page per example with the
// rendered chart and its source, and the raw SVG endpoint backing the
// pages. Rendered SVGs are cached on disk when cache_dir is set.
func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive example gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServerConfig(configPath)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "server config file (TOML)")

	return cmd
}

// docsServer holds the handler dependencies.
type docsServer struct {
	cache  cache.Cache
	ttl    time.Duration
	width  float64
	height float64
}

// runServe starts the documentation server and blocks until the
// context is canceled or the listener fails.
func runServe(ctx context.Context, cfg serverConfig) error {
	logger := loggerFromContext(ctx)

	store := cache.Cache(cache.NewNullCache())
	if cfg.CacheDir != "" {
		fc, err := cache.NewFileCache(cfg.CacheDir)
		if err != nil {
			return err
		}
		store = fc
		logger.Debugf("Render cache at %s (ttl %ds)", cfg.CacheDir, cfg.CacheTTL)
	}
	defer store.Close()

	s := &docsServer{
		cache:  store,
		ttl:    time.Duration(cfg.CacheTTL) * time.Second,
		width:  cfg.Width,
		height: cfg.Height,
	}

	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     s.router(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Serving examples on %s", cfg.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// router builds the chi route tree.
func (s *docsServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(hookMiddleware)

	r.Get("/", s.handleIndex)
	r.Get("/examples/{name}", s.handlePage)
	r.Get("/examples/{name}/chart.svg", s.handleSVG)

	return r
}

// hookMiddleware reports request lifecycle events to the registered
// server hooks.
func hookMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func (s *docsServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	docs.WriteIndex(w, docs.All())
}

func (s *docsServer) handlePage(w http.ResponseWriter, r *http.Request) {
	ex, ok := docs.Lookup(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	seed := querySeed(r)

	svg := s.renderExample(r.Context(), ex, seed)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	docs.WritePage(w, ex, svg, seed+1)
}

func (s *docsServer) handleSVG(w http.ResponseWriter, r *http.Request) {
	ex, ok := docs.Lookup(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	svg := s.renderExample(r.Context(), ex, querySeed(r))

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

// renderExample returns the example's SVG for the given seed, serving
// from the render cache when possible.
func (s *docsServer) renderExample(ctx context.Context, ex docs.Example, seed int64) []byte {
	hooks := observability.Cache()
	key := cache.RenderKey(ex.Name, s.width, s.height, seed)

	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		hooks.OnCacheHit(ctx, "svg")
		return data
	}
	hooks.OnCacheMiss(ctx, "svg")

	elements, opts := ex.Build(seed)
	opts = append(opts, plot.Size(s.width, s.height))
	svg := pipeline.Compose(ctx, ex.Name, elements, opts...)

	if err := s.cache.Set(ctx, key, svg, s.ttl); err == nil {
		hooks.OnCacheSet(ctx, "svg", len(svg))
	}
	return svg
}

// querySeed parses the seed query parameter, falling back to the
// default when absent or malformed.
func querySeed(r *http.Request) int64 {
	if v := r.URL.Query().Get("seed"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return seed
		}
	}
	return defaultSeed
}
