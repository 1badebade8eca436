package module

import (
	"jejenorm/internal/modkit/swaggerkit"
	"jejenorm/internal/services/api/jejenorm/domain"
)

func str() map[string]any  { return map[string]any{"type": "string"} }
func intg() map[string]any { return map[string]any{"type": "integer"} }

func object(required []any, props map[string]any) map[string]any {
	o := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		o["required"] = required
	}
	return o
}

// docs adds the jejenorm routes and models to the OpenAPI document
func docs(spec map[string]any) {
	s := swaggerkit.Schemas(spec)
	output := object([]any{"normalized", "sentiment", "original_length", "normalized_length"}, map[string]any{
		"normalized":        str(),
		"sentiment":         map[string]any{"type": "string", "enum": []any{"positive", "negative"}},
		"original_length":   intg(),
		"normalized_length": intg(),
	})
	s["NormalizeInput"] = object([]any{"text"}, map[string]any{
		"text": map[string]any{"type": "string", "example": "u r luv"},
	})
	s["NormalizeOutput"] = output
	s["BatchInput"] = object([]any{"texts"}, map[string]any{
		"texts": map[string]any{"type": "array", "minItems": 1, "maxItems": 100, "items": str()},
	})
	s["BatchOutput"] = object([]any{"results"}, map[string]any{
		"results": map[string]any{"type": "array", "items": swaggerkit.Ref("NormalizeOutput")},
	})
	s["RulesStats"] = object(nil, map[string]any{
		"version":    intg(),
		"rules":      intg(),
		"identities": intg(),
		"max_words":  intg(),
		"leet_pairs": intg(),
		"mode":       map[string]any{"type": "string", "enum": []any{domain.ModeSinglePass, domain.ModeCascade}},
	})
	s["BannerResp"] = object([]any{"message"}, map[string]any{"message": str()})

	swaggerkit.AddOperation(spec, "get", "/", "Jejenorm", "Liveness banner", "", "BannerResp")
	swaggerkit.AddOperation(spec, "post", "/normalize", "Jejenorm",
		"Normalize jejemon text and classify its sentiment", "NormalizeInput", "NormalizeOutput")
	swaggerkit.AddOperation(spec, "post", "/normalize/batch", "Jejenorm",
		"Normalize up to 100 texts, results in input order", "BatchInput", "BatchOutput")
	swaggerkit.AddOperation(spec, "get", "/rules/stats", "Jejenorm", "Dataset and normalizer mode", "", "RulesStats")
}
