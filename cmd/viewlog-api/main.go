// @title         Viewlog API
// @version       0.1.0
// @description   CSV batch ingestion plus time-series and monthly statistics

package main

import (
	"context"

	"viewlog/internal/modkit/repokit"
	"viewlog/internal/platform/config"
	"viewlog/internal/platform/logger"
	phttp "viewlog/internal/platform/net/http"
	"viewlog/internal/platform/store"

	"viewlog/internal/services/api"
	recordsrepo "viewlog/internal/services/records/repo"
)

func main() {
	// service-scoped config for HTTP etc (VIEWLOG_API_*)
	root := config.New()
	apiCfg := root.Prefix("VIEWLOG_API_")

	pgCfg := root.Prefix("VIEWLOG_PGSQL_") // pgCfg lives under VIEWLOG_PGSQL_*

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "viewlog-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast before taking traffic
	repokit.MustGuard(context.Background(), st)

	if err := recordsrepo.EnsureSchema(context.Background(), st.PG); err != nil {
		l.Panic().Err(err).Msg("schema bootstrap failed")
	}

	// http server (reads VIEWLOG_API_PORT / VIEWLOG_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
