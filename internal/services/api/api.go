// Package api composes the HTTP API for the application
package api

import (
	stdhttp "net/http"

	"viewlog/internal/platform/config"
	perr "viewlog/internal/platform/errors"
	"viewlog/internal/platform/logger"
	phttp "viewlog/internal/platform/net/http"
	"viewlog/internal/platform/store"

	"viewlog/internal/modkit"
	"viewlog/internal/modkit/httpkit"
	"viewlog/internal/modkit/module"
	"viewlog/internal/modkit/swaggerkit"

	analyticsmod "viewlog/internal/services/analytics/module"
	recordsmod "viewlog/internal/services/records/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// records owns the write path; analytics reads through its port
	records := recordsmod.New(deps)
	reads := module.MustPortsOf[recordsmod.Ports](records).Read

	analytics := analyticsmod.New(
		deps,
		modkit.WithPorts(analyticsmod.Ports{
			Reads: reads,
		}),
	)

	mods := []module.Module{
		records,
		analytics,
	}

	// liveness sits outside the versioned API so load balancers hit it bare
	r.Get("/health", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		if err := opt.Store.Guard(req.Context()); err != nil {
			phttp.RespondError(w, req, perr.Unavailablef("storage unavailable: %v", err))
			return
		}
		phttp.RespondOK(w, req, map[string]string{"status": "ok"})
	})

	swaggerkit.Mount(r, opt.EnableSwagger)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
