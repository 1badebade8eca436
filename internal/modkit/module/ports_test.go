package module

import (
	"testing"

	phttp "jejenorm/internal/platform/net/http"
	kit "jejenorm/internal/platform/testkit"
)

// Checker is a tiny port our test modules can expose
type Checker interface {
	Check() string
}

type checkImpl struct{ v string }

func (c checkImpl) Check() string { return c.v }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string { return m.name }

func (m fakeModule) Ports() any { return m.ports }

func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Name    string
		Checker Checker
		hidden  Checker
	}

	cases := []struct {
		name  string
		ports any
		want  string
		ok    bool
	}{
		{"nil ports", nil, "", false},
		{"direct", checkImpl{v: "direct"}, "direct", true},
		{"struct field", bundle{Name: "x", Checker: checkImpl{v: "field"}}, "field", true},
		{"pointer to struct", &bundle{Checker: checkImpl{v: "ptr"}}, "ptr", true},
		{"nil pointer", (*bundle)(nil), "", false},
		{"unexported only", bundle{hidden: checkImpl{v: "no"}}, "", false},
		{"unrelated", 42, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[Checker](fakeModule{name: tc.name, ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Check() != tc.want {
				t.Fatalf("Check() = %q, want %q", got.Check(), tc.want)
			}
		})
	}

	if _, ok := PortsOf[Checker](nil); ok {
		t.Fatal("nil module should yield ok=false")
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "rules", ports: checkImpl{v: "ok"}}
	if MustPortsOf[Checker](m).Check() != "ok" {
		t.Fatal("MustPortsOf returned the wrong port")
	}
	kit.MustPanic(t, func() { _ = MustPortsOf[Checker](fakeModule{name: "empty"}) })
}

func TestCollect_KeepsModuleOrder(t *testing.T) {
	t.Parallel()

	got := Collect[Checker](
		fakeModule{name: "a", ports: checkImpl{v: "a"}},
		fakeModule{name: "meta"},
		fakeModule{name: "b", ports: struct{ C Checker }{checkImpl{v: "b"}}},
	)
	if len(got) != 2 || got[0].Check() != "a" || got[1].Check() != "b" {
		t.Fatalf("unexpected collect result %v", got)
	}
}
