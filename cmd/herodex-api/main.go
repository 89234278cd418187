package main

import (
	"context"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"herodex/internal/modkit"
	"herodex/internal/platform/config"
	"herodex/internal/platform/logger"
	phttp "herodex/internal/platform/net/http"
	"herodex/internal/platform/net/middleware"
	"herodex/internal/platform/store"

	draftsmod "herodex/internal/services/drafts/module"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	rdsCfg := root.Prefix("SERVICE_REDIS_")

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
			ClientTag:  "api",
		},
		RDS: store.RedisConfig{
			Enabled: rdsCfg.MayBool("ENABLED", false),
			Addr:    rdsCfg.MayString("ADDR", "localhost:6379"),
			DB:      rdsCfg.MayInt("DB", 0),
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

	srv := phttp.NewServer(apiCfg)
	r := srv.Router()
	r.Use(
		middleware.RealIP(),
		middleware.RequestID,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: time.Second}),
		middleware.RecoverJSON,
		middleware.Timeout(30*time.Second),
		middleware.CORSDefault(apiCfg.MayCSV("CORS_ORIGINS", []string{"*"})...),
	)

	r.Get("/healthz", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		if err := st.Guard(req.Context()); err != nil {
			phttp.RespondError(w, req, err)
			return
		}
		phttp.RespondOK(w, req, map[string]string{"status": "ok"})
	})

	deps := modkit.Deps{
		Log:   *l,
		Cfg:   root,
		CH:    st.CH,
		Cache: st.Cache,
	}
	draftsmod.New(deps).MountRoutes(r)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	select {
	case err := <-errCh:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
	}
}
