// Package module wires analytics into the API using modkit
package module

import (
	"net/http"

	modkit "viewlog/internal/modkit"
	"viewlog/internal/modkit/httpkit"
	"viewlog/internal/modkit/module"
	str "viewlog/internal/platform/strings"
	analyticshttp "viewlog/internal/services/analytics/http"
	analyticssvc "viewlog/internal/services/analytics/service"
	recdomain "viewlog/internal/services/records/domain"
)

// Ports exposed by the analytics module
type Ports struct {
	// Reads is required wiring from the records module
	Reads recdomain.ReadPort
}

// Module implements the analytics module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc analyticssvc.Service
}

// New constructs the analytics module; a records ReadPort must be injected
// through modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analytics"), modkit.WithPrefix("/stats")}, opts...)...)

	wired, ok := b.Ports.(Ports)
	if !ok || wired.Reads == nil {
		panic("analytics module requires a records ReadPort via WithPorts")
	}

	svc := analyticssvc.New(wired.Reads)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptServicePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyticshttp.Register(r, m.svc)
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

var _ module.Module = (*Module)(nil)
