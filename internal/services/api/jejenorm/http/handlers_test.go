package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"jejenorm/internal/modkit/httpkit"
	phttp "jejenorm/internal/platform/net/http"
	kit "jejenorm/internal/platform/testkit"
	"jejenorm/internal/services/api/jejenorm/domain"
	"jejenorm/internal/services/api/jejenorm/service"
)

type errEnvelope struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Code       int    `json:"code"`
	Error      string `json:"error"`
	Field      string `json:"field"`
}

func newMux() *chi.Mux {
	mux := chi.NewRouter()
	httpkit.MountRoot(phttp.AdaptChi(mux), nil, func(r httpkit.Router) {
		Register(r, service.New(nil, service.Config{}))
	})
	return mux
}

func do(mux stdhttp.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestBanner(t *testing.T) {
	rr := do(newMux(), stdhttp.MethodGet, "/", "")
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"message":"Jejenorm backend running!"}` {
		t.Fatalf("body %s", got)
	}
}

func TestNormalize_OK(t *testing.T) {
	mux := newMux()
	cases := []struct {
		body string
		want domain.NormalizeOutput
	}{
		{`{"text":"u r luv"}`, domain.NormalizeOutput{Normalized: "you are love", Sentiment: "positive", OriginalLength: 7, NormalizedLength: 12}},
		{`{"text":""}`, domain.NormalizeOutput{Normalized: "", Sentiment: "positive"}},
		{`{"text":"i h8 u, sad"}`, domain.NormalizeOutput{Normalized: "i hb you, sad", Sentiment: "negative", OriginalLength: 11, NormalizedLength: 13}},
	}
	for _, tc := range cases {
		rr := do(mux, stdhttp.MethodPost, "/normalize", tc.body)
		if rr.Code != stdhttp.StatusOK {
			t.Fatalf("%s: status %d %s", tc.body, rr.Code, rr.Body.String())
		}
		got := kit.DecodeJSON[domain.NormalizeOutput](t, rr.Body.Bytes())
		if got != tc.want {
			t.Fatalf("%s: got %+v want %+v", tc.body, got, tc.want)
		}
		// bare: no envelope keys
		if strings.Contains(rr.Body.String(), "status_code") {
			t.Fatalf("success body should not be enveloped: %s", rr.Body.String())
		}
	}
}

func TestNormalize_BadRequests(t *testing.T) {
	mux := newMux()
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing text", `{}`, "text"},
		{"null text", `{"text":null}`, "text"},
		{"wrong type", `{"text":42}`, ""},
		{"unknown field", `{"text":"x","extra":1}`, ""},
		{"malformed", `{"text":"x"`, ""},
		{"empty body", ``, ""},
		{"trailing data", `{"text":"x"} {}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(mux, stdhttp.MethodPost, "/normalize", tc.body)
			if rr.Code != stdhttp.StatusBadRequest {
				t.Fatalf("status %d body %s", rr.Code, rr.Body.String())
			}
			env := kit.DecodeJSON[errEnvelope](t, rr.Body.Bytes())
			if env.StatusCode != 400 || env.Error == "" {
				t.Fatalf("unexpected envelope %+v", env)
			}
			if tc.field != "" && env.Field != tc.field {
				t.Fatalf("field = %q, want %q", env.Field, tc.field)
			}
		})
	}
}

func TestNormalize_TooLarge(t *testing.T) {
	big := `{"text":"` + strings.Repeat("a", 1<<20) + `"}`
	rr := do(newMux(), stdhttp.MethodPost, "/normalize", big)
	if rr.Code != stdhttp.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 got %d", rr.Code)
	}
}

func TestNormalizeBatch(t *testing.T) {
	mux := newMux()

	rr := do(mux, stdhttp.MethodPost, "/normalize/batch", `{"texts":["u r luv","","h3y"]}`)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status %d %s", rr.Code, rr.Body.String())
	}
	got := kit.DecodeJSON[domain.BatchOutput](t, rr.Body.Bytes())
	if len(got.Results) != 3 || got.Results[0].Normalized != "you are love" ||
		got.Results[1].Normalized != "" || got.Results[2].Normalized != "hey" {
		t.Fatalf("unexpected batch %+v", got)
	}

	for _, body := range []string{`{"texts":[]}`, `{}`, `{"texts":[` + strings.Repeat(`"a",`, 100) + `"a"]}`} {
		rr := do(mux, stdhttp.MethodPost, "/normalize/batch", body)
		if rr.Code != stdhttp.StatusBadRequest {
			t.Fatalf("%.40s: expected 400 got %d", body, rr.Code)
		}
		if env := kit.DecodeJSON[errEnvelope](t, rr.Body.Bytes()); env.Field != "texts" {
			t.Fatalf("%.40s: field = %q", body, env.Field)
		}
	}
}

func TestRulesStats(t *testing.T) {
	rr := do(newMux(), stdhttp.MethodGet, "/rules/stats", "")
	got := kit.DecodeJSON[domain.RulesStats](t, rr.Body.Bytes())
	if got.Version != 1 || got.Rules == 0 || got.Mode != "single-pass" || got.LeetPairs != 9 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestRoutingErrors(t *testing.T) {
	mux := newMux()
	if rr := do(mux, stdhttp.MethodGet, "/normalize", ""); rr.Code != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("GET /normalize: %d", rr.Code)
	}
	if rr := do(mux, stdhttp.MethodGet, "/nope", ""); rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("GET /nope: %d", rr.Code)
	}
}
