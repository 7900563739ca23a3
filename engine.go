package nori

// SegmentationEngine produces a token stream for one (configuration, input)
// pair. Opening a session may fail, e.g. on a malformed user dictionary.
// The engine applies the configuration's stop-tag set, decompound mode and
// unknown-unigram policy inside the stream: filtered tokens never reach the
// collector.
type SegmentationEngine interface {
	OpenSession(cfg *Config, text string) (Session, error)
}

// SessionToken is the raw per-token view a session exposes. PosInc is the
// position increment relative to the previous token; 0 means the token
// occupies the same logical slot as its predecessor.
type SessionToken struct {
	Surface  string
	PosInc   int
	Start    int
	End      int
	Type     string
	POSType  string
	LeftPOS  string
	RightPOS string
	Reading  string
}

// Session is a single-use token stream over one input.
//
// Lifecycle: Reset, then Next/Token until Next returns false, then Err to
// check for a stream failure, then End exactly once, then Close. Close is
// idempotent and must be called on every path, including failures.
type Session interface {
	Reset() error
	Next() bool
	Token() SessionToken
	Err() error
	End() error
	Close() error
}
