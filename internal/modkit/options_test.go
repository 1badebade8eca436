package modkit

import (
	"net/http"
	"testing"

	phttp "jejenorm/internal/platform/net/http"
)

func TestWithNameAndPrefix(t *testing.T) {
	t.Parallel()
	var c buildCfg
	WithName("meta")(&c)
	WithPrefix("/meta")(&c)
	if c.name != "meta" || c.prefix != "/meta" {
		t.Fatalf("unexpected cfg %+v", c)
	}
}

func TestWithMiddlewares_AccumulatesAndOrder(t *testing.T) {
	t.Parallel()

	var log []string
	mw := func(tag string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				log = append(log, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	var c buildCfg
	WithMiddlewares(mw("a"), mw("b"))(&c)
	WithMiddlewares(mw("c"))(&c)

	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for i := len(c.mw) - 1; i >= 0; i-- {
		h = c.mw[i](h)
	}
	h.ServeHTTP(nil, nil)

	want := []string{"a", "b", "c"}
	if len(log) != len(want) {
		t.Fatalf("unexpected call count got=%d want=%d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("middleware order mismatch at %d: got=%q want=%q", i, log[i], want[i])
		}
	}
}

func TestWithPorts_StoresConcreteType(t *testing.T) {
	t.Parallel()

	type Ports struct{ Name string }
	var c buildCfg
	WithPorts(Ports{Name: "rules"})(&c)
	if ps, ok := c.ports.(Ports); !ok || ps.Name != "rules" {
		t.Fatalf("unexpected ports %#v", c.ports)
	}
}

func TestWithRegister_SetsAndCalls(t *testing.T) {
	t.Parallel()

	var c buildCfg
	called := false
	WithRegister(func(phttp.Router) { called = true })(&c)
	c.register(nil)
	if !called {
		t.Fatal("expected register function to be called")
	}
}
