// Package module wires records into the API using modkit
package module

import (
	"net/http"

	modkit "viewlog/internal/modkit"
	"viewlog/internal/modkit/httpkit"
	str "viewlog/internal/platform/strings"
	recordshttp "viewlog/internal/services/records/http"
	recordsrepo "viewlog/internal/services/records/repo"
	recordssvc "viewlog/internal/services/records/service"
)

// Module implements the records module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc recordssvc.Service
}

// New constructs the records module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("records"), modkit.WithPrefix("/batches")}, opts...)...)

	mopts := FromConfig(deps.Cfg)
	binder := recordsrepo.NewPG()
	svc := recordssvc.New(deps.PG, binder, recordssvc.Config{
		MaxRejected: mopts.MaxRejected,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{
		Ingest: svc,
		Read:   svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		recordshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
