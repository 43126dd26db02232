package modkit

import (
	"net/http"
	"testing"

	"viewlog/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("Build() name/prefix = %q/%q, want empty", b.Name, b.Prefix)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("Build() must default the router hooks")
	}
	// the default subrouter is identity
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("default subrouter should pass the router through unchanged")
	}
}

func TestBuild_AppliesOptions(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	registered := false

	b := Build(
		WithName("records"),
		WithPrefix("/batches"),
		WithMiddlewares(mw),
		WithPorts("port-bundle"),
		WithSwagger(true),
		WithRegister(func(httpkit.Router) { registered = true }),
	)

	if b.Name != "records" || b.Prefix != "/batches" {
		t.Fatalf("Build options not applied: name=%q prefix=%q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("Build middlewares = %d, want 1", len(b.Mw))
	}
	if b.Ports != "port-bundle" {
		t.Fatalf("Build ports = %v", b.Ports)
	}
	if !b.SwaggerOn {
		t.Fatalf("Build swagger toggle not applied")
	}

	b.Register(nil)
	if !registered {
		t.Fatalf("Build register hook was not wired")
	}
}

func TestBuild_SubrouterOverride(t *testing.T) {
	t.Parallel()

	called := false
	b := Build(WithSubrouter(func(r httpkit.Router) httpkit.Router {
		called = true
		return r
	}))

	_ = b.Subrouter(nil)
	if !called {
		t.Fatalf("Build subrouter hook was not wired")
	}
}
