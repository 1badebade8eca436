package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sync"

	"jejenorm/internal/core/version"
	perr "jejenorm/internal/platform/errors"
)

// SpecMutator lets modules add paths and schemas to the OpenAPI document before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// Register adds a spec mutator. Modules call it from New so their routes are documented
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset drops every registered mutator. Meant for tests
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// Spec builds the OpenAPI 3 document from the registered mutators
func Spec(title string) map[string]any {
	bi := version.Info(title)
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   title,
			"version": bi.Version,
		},
		"servers": []any{map[string]any{"url": "/"}},
		"paths":   map[string]any{},
	}

	mu.RLock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.RUnlock()
	for _, m := range ms {
		m(spec)
	}

	ensureErrorResponseDefinition(spec)
	addDefaultResponse(spec, "500", errorResponse("Internal Server Error", 500, int(perr.ErrorCodePanic), "panic recovered"))
	addDefaultResponse(spec, "400", errorResponse("Bad Request", 400, int(perr.ErrorCodeValidation), "text is a required field"))
	return spec
}

// serveDocJSON serves the assembled document
func serveDocJSON(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Spec(title))
	}
}

// ensureErrorResponseDefinition creates the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := Schemas(spec)
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorResponse(desc string, status, code int, msg string) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": Ref("ErrorResponse"),
				"example": map[string]any{
					"status_code": status,
					"status":      desc,
					"code":        code,
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}

// addDefaultResponse walks every operation and injects resp under status if absent
func addDefaultResponse(spec map[string]any, status string, resp map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps[status]; !exists {
				resps[status] = resp
			}
		}
	}
}

// Schemas returns components.schemas, creating the maps on the way
func Schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	return schemas
}

// AddOperation documents method on path. A JSON request body is added when reqSchema is set
func AddOperation(spec map[string]any, method, path, tag, summary, reqSchema, respSchema string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	node, ok := paths[path].(map[string]any)
	if !ok {
		node = map[string]any{}
		paths[path] = node
	}
	op := map[string]any{
		"tags":    []any{tag},
		"summary": summary,
		"responses": map[string]any{
			"200": map[string]any{
				"description": "OK",
				"content": map[string]any{
					"application/json": map[string]any{"schema": Ref(respSchema)},
				},
			},
		},
	}
	if reqSchema != "" {
		op["requestBody"] = map[string]any{
			"required": true,
			"content": map[string]any{
				"application/json": map[string]any{"schema": Ref(reqSchema)},
			},
		}
	}
	node[method] = op
}

// Ref builds a $ref to a component schema
func Ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}
