// Package nori tokenizes Korean text into annotated morphological terms.
package nori

import (
	"log/slog"
	"strings"
)

// Analyzer is the tokenization façade. It holds an immutable configuration
// and a segmentation engine; all per-call working state lives inside the
// call, so one Analyzer is safe for concurrent use.
type Analyzer struct {
	config *Config
	engine SegmentationEngine
	logger *slog.Logger
}

type AnalyzerOption func(*Analyzer)

func WithLogger(l *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		a.logger = l
	}
}

func NewAnalyzer(config *Config, engine SegmentationEngine, options ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		config: config,
		engine: engine,
		logger: slog.Default(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// analyze opens a fresh session for one call and collects it to completion.
func (a *Analyzer) analyze(text string) ([]Term, error) {
	session, err := a.engine.OpenSession(a.config, text)
	if err != nil {
		return nil, &SessionInitError{Err: err}
	}
	return collect(session)
}

// AnalyzeTerms runs morphological analysis over text and returns the full
// ordered term list. Session initialization and stream read failures
// propagate to the caller; a partial result is never returned as success.
func (a *Analyzer) AnalyzeTerms(text string) ([]Term, error) {
	terms, err := a.analyze(text)
	if err != nil {
		a.logger.Error("nori: analyze for terms", "error", err)
		return nil, err
	}
	return terms, nil
}

// AnalyzeString returns the analyzed surface forms joined by single spaces,
// with no leading or trailing whitespace. Any internal failure is logged and
// collapses to the empty string; callers that need to distinguish failure
// from empty input should use AnalyzeTerms.
func (a *Analyzer) AnalyzeString(text string) string {
	terms, err := a.analyze(text)
	if err != nil {
		a.logger.Error("nori: analyze for string", "error", err)
		return ""
	}
	return strings.Join(Surfaces(terms), " ")
}
