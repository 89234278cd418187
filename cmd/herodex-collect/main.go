package main

import (
	"context"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"herodex/internal/modkit"
	"herodex/internal/modkit/module"
	"herodex/internal/platform/config"
	"herodex/internal/platform/logger"
	"herodex/internal/platform/metrics"
	"herodex/internal/platform/store"

	collectmod "herodex/internal/services/collector/module"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	colCfg := root.Prefix("CORE_COLLECT_")

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		AppName: "herodex",
		CH: store.CHConfig{
			Enabled:    true,
			URL:        chCfg.MustString("DBURL"),
			Database:   chCfg.MayString("DATABASE", "herodex"),
			ClientName: "herodex",
			ClientTag:  "collect",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var met *metrics.Metrics
	if addr := colCfg.MayString("METRICS_ADDR", ""); addr != "" {
		met = metrics.New()
		mux := stdhttp.NewServeMux()
		mux.Handle("/metrics", met.Handler())
		msrv := &stdhttp.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			l.Info().Str("addr", addr).Msg("metrics listening")
			if err := msrv.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
				l.Error().Err(err).Msg("metrics server stopped")
			}
		}()
		defer func() {
			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = msrv.Shutdown(shCtx)
		}()
	}

	deps := modkit.Deps{
		Log: *l,
		Cfg: root,
		CH:  st.CH,
	}
	cm, err := collectmod.New(deps, met)
	if err != nil {
		l.Panic().Err(err).Msg("collector wiring failed")
	}
	module.Register(cm.Name(), cm.Ports())

	runner := module.MustPortsOf[collectmod.Ports](cm).Runner
	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		l.Panic().Err(err).Msg("collector stopped")
	}
	l.Info().Msg("collector shut down")
}
