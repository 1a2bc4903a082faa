package helper

import (
	"context"
	"errors"
	"net/http"
	"time"

	"k8s.io/klog/v2"

	"github.com/raids-lab/agencyos/internal"
	"github.com/raids-lab/agencyos/internal/handler"
	"github.com/raids-lab/agencyos/pkg/config"
)

// ServerRunner runs the API server and the optional metrics listener.
type ServerRunner struct {
	backendConfig *config.Config
}

func NewServerRunner(backendConfig *config.Config) *ServerRunner {
	return &ServerRunner{
		backendConfig: backendConfig,
	}
}

var (
	readHeaderTimeout = 10 * time.Second
	cancelTimeout     = 10 * time.Second
)

// StartMetricsServer serves /metrics on MetricsAddr until ctx is done. It does nothing
// when no separate address is configured.
func (sr *ServerRunner) StartMetricsServer(ctx context.Context, registerConfig *handler.RegisterConfig) {
	if sr.backendConfig.MetricsAddr == "" {
		return
	}
	metrics, ok := handler.NewMetricsMgr(registerConfig).(*handler.MetricsMgr)
	if !ok {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.MetricsHandler())
	srv := &http.Server{
		Addr:              sr.backendConfig.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		klog.Infof("metrics listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("metrics server: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdown(srv)
	}()
}

// StartServer serves the API until ctx is done, then shuts down gracefully.
func (sr *ServerRunner) StartServer(ctx context.Context, registerConfig *handler.RegisterConfig) {
	klog.Info("starting server")
	backend := internal.Register(registerConfig)

	// reference: https://gin-gonic.com/en/docs/examples/graceful-restart-or-stop
	srv := &http.Server{
		Addr:              sr.backendConfig.ServerAddr,
		Handler:           backend,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Fatalf("listen: %s\n", err)
		}
	}()

	<-ctx.Done()
	klog.Info("Shutdown Gin Server ...")
	shutdown(srv)
	klog.Info("Gin Server exiting")
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), cancelTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		klog.Info("Server Shutdown:", err)
	}
}
