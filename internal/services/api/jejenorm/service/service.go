// Package service runs the normalizer and the sentiment classifier for the jejenorm API
package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"jejenorm/internal/core/normalize"
	"jejenorm/internal/core/ruleset"
	"jejenorm/internal/core/sentiment"
	perr "jejenorm/internal/platform/errors"
	"jejenorm/internal/platform/pool"
	"jejenorm/internal/services/api/jejenorm/domain"
)

// Config for the jejenorm service
type Config struct {
	Cascade bool // legacy rule-by-rule substitution
	Squash  int  // cut repeated runes to this many, 0 = off
	Fold    bool // NFKC + width folding before lowercasing
	Workers int  // batch fan-out, <= 0 = GOMAXPROCS
}

// Service implements domain.ServicePort
type Service struct {
	norm *normalize.Normalizer
	cfg  Config
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs the service over rules. A nil dataset uses the embedded one
func New(rules *ruleset.Dataset, cfg Config) *Service {
	opts := []normalize.Option{normalize.WithDataset(rules)}
	if cfg.Cascade {
		opts = append(opts, normalize.WithCascade())
	}
	if cfg.Squash > 0 {
		opts = append(opts, normalize.WithSquashRepeats(cfg.Squash))
	}
	if cfg.Fold {
		opts = append(opts, normalize.WithUnicodeFold())
	}
	cfg.Workers = pool.Workers(cfg.Workers)
	return &Service{norm: normalize.New(opts...), cfg: cfg}
}

// Process normalizes text and classifies the raw input. It never fails
func (s *Service) Process(text string) domain.NormalizeOutput {
	out := s.norm.Normalize(text)
	return domain.NormalizeOutput{
		Normalized:       out,
		Sentiment:        sentiment.Detect(text),
		OriginalLength:   utf8.RuneCountInString(text),
		NormalizedLength: utf8.RuneCountInString(out),
	}
}

// Normalize handles one request. A missing text is a validation error
func (s *Service) Normalize(ctx context.Context, in domain.NormalizeInput) (domain.NormalizeOutput, error) {
	if in.Text == nil {
		return domain.NormalizeOutput{}, perr.WithField(perr.Validationf("text is a required field"), "text")
	}
	if err := ctx.Err(); err != nil {
		return domain.NormalizeOutput{}, contextErr(err)
	}
	return s.Process(*in.Text), nil
}

// NormalizeBatch processes every text on the worker pool, keeping input order
func (s *Service) NormalizeBatch(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error) {
	if len(in.Texts) == 0 {
		return domain.BatchOutput{}, perr.WithField(perr.Validationf("texts must contain at least 1 item"), "texts")
	}
	if len(in.Texts) > domain.MaxBatch {
		return domain.BatchOutput{}, perr.WithField(
			perr.Validationf("texts must contain at most %d items", domain.MaxBatch), "texts")
	}
	res, err := pool.Map(ctx, s.cfg.Workers, in.Texts, func(_ context.Context, t string) (domain.NormalizeOutput, error) {
		return s.Process(t), nil
	})
	if err != nil {
		return domain.BatchOutput{}, contextErr(err)
	}
	return domain.BatchOutput{Results: res}, nil
}

// Stats reports the dataset and the normalizer mode
func (s *Service) Stats() domain.RulesStats {
	d := s.norm.Dataset()
	mode := domain.ModeSinglePass
	if s.norm.Cascade() {
		mode = domain.ModeCascade
	}
	return domain.RulesStats{
		Version:    d.Version,
		Rules:      d.Len(),
		Identities: d.Identities(),
		MaxWords:   d.MaxWords(),
		LeetPairs:  len(normalize.LeetMap()),
		Mode:       mode,
	}
}

// Config returns the effective configuration
func (s *Service) Config() Config { return s.cfg }

// CheckName names the readiness check
func (s *Service) CheckName() string { return "rules" }

// Check reports ready once the dataset is loaded and a probe normalizes as expected
func (s *Service) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.norm.Dataset().Len() == 0 {
		return perr.Unavailablef("rule dataset is empty")
	}
	if got := s.norm.Normalize("  H3Y  "); got != "hey" {
		return perr.Unavailablef("normalizer probe returned %q", got)
	}
	return nil
}

func contextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return perr.Wrap(err, perr.ErrorCodeTimeout, "request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "request cancelled")
	}
	return err
}
