package nori

// TermStore persists analysis results keyed by document, for downstream
// indexing pipelines that want the annotated terms rather than raw text.
type TermStore interface {
	SaveAnalysis(docID string, terms []Term) error
	GetAnalysis(docID string) ([]Term, error)
	DeleteAnalysis(docID string) error
}
