// Package domain holds DTOs for the jejenorm HTTP and service contracts
package domain

import "jejenorm/internal/core/sentiment"

// Banner is the liveness message served at the root path
const Banner = "Jejenorm backend running!"

// MaxBatch caps the number of texts in one batch request
const MaxBatch = 100

// Normalizer modes reported by RulesStats
const (
	ModeSinglePass = "single-pass"
	ModeCascade    = "cascade"
)

// NormalizeInput is the POST /normalize body. Text is a pointer so a present
// empty string passes validation while a missing field does not
type NormalizeInput struct {
	Text *string `json:"text" validate:"required" example:"u r luv"`
}

// NormalizeOutput is the normalization and sentiment result for one text.
// Lengths count Unicode code points
type NormalizeOutput struct {
	Normalized       string          `json:"normalized"        example:"you are love"`
	Sentiment        sentiment.Label `json:"sentiment"         example:"positive"`
	OriginalLength   int             `json:"original_length"   example:"7"`
	NormalizedLength int             `json:"normalized_length" example:"12"`
}

// BatchInput is the POST /normalize/batch body
type BatchInput struct {
	Texts []string `json:"texts" validate:"required,min=1,max=100"`
}

// BatchOutput holds one result per input text, in input order
type BatchOutput struct {
	Results []NormalizeOutput `json:"results"`
}

// RulesStats describes the loaded dataset and normalizer mode
type RulesStats struct {
	Version    int    `json:"version"     example:"1"`
	Rules      int    `json:"rules"       example:"442"`
	Identities int    `json:"identities"  example:"12"`
	MaxWords   int    `json:"max_words"   example:"4"`
	LeetPairs  int    `json:"leet_pairs"  example:"9"`
	Mode       string `json:"mode"        example:"single-pass"` // single-pass cascade
}

// BannerResp is the GET / payload
type BannerResp struct {
	Message string `json:"message" example:"Jejenorm backend running!"`
}
