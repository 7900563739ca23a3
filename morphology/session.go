package morphology

import (
	"strings"

	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/pkg/errors"

	"github.com/morphkit/nori"
)

// mecab-ko-dic feature vector layout.
const (
	featPOS            = iota // 품사 태그
	featMeaningClass          // 의미 부류
	featFinalConsonant        // 종성 유무
	featReading               // 읽기
	featType                  // 타입: * | Inflect | Compound | Preanalysis
	featFirstPOS              // 첫번째 품사
	featLastPOS               // 마지막 품사
	featExpression            // 표현: surf/TAG/*+surf/TAG/*...
)

// feature returns fs[i] with the mecab placeholder "*" mapped to empty.
func feature(fs []string, i int) string {
	if i >= len(fs) || fs[i] == "*" {
		return ""
	}
	return fs[i]
}

// materialize turns raw kagome tokens into the session token stream:
// decompounding and the unknown-unigram policy expand tokens, then the
// stop-tag filter drops tokens while folding their increments into the next
// kept one, so output positions may skip values.
func materialize(cfg *nori.Config, tokens []tokenizer.Token) []nori.SessionToken {
	out := make([]nori.SessionToken, 0, len(tokens))
	for _, tk := range tokens {
		out = append(out, expand(cfg, tk)...)
	}
	return filterStopTags(cfg.StopTags, out)
}

func expand(cfg *nori.Config, tk tokenizer.Token) []nori.SessionToken {
	base := baseToken(tk)
	if tk.Class == tokenizer.UNKNOWN && cfg.OutputUnknownUnigrams {
		return unigrams(base)
	}

	parts := compoundParts(tk, base)
	if len(parts) == 0 {
		return []nori.SessionToken{base}
	}
	switch cfg.DecompoundMode {
	case nori.DecompoundDiscard:
		return parts
	case nori.DecompoundMixed:
		// 합성어와 첫 구성 형태소는 같은 위치를 공유한다.
		parts[0].PosInc = 0
		return append([]nori.SessionToken{base}, parts...)
	default:
		return []nori.SessionToken{base}
	}
}

func baseToken(tk tokenizer.Token) nori.SessionToken {
	fs := tk.Features()
	st := nori.SessionToken{
		Surface: tk.Surface,
		PosInc:  1,
		Start:   tk.Start,
		End:     tk.End,
		Type:    tk.Class.String(),
		POSType: "MORPHEME",
		Reading: feature(fs, featReading),
	}
	tag := feature(fs, featPOS)
	st.LeftPOS, st.RightPOS = tag, tag
	if v := feature(fs, featType); v != "" {
		st.POSType = strings.ToUpper(v)
	}
	if v := feature(fs, featFirstPOS); v != "" {
		st.LeftPOS = v
	}
	if v := feature(fs, featLastPOS); v != "" {
		st.RightPOS = v
	}
	return st
}

// compoundParts splits a Compound entry along its expression feature.
// Constituent offsets advance by rune length within the compound span.
// Inflect entries keep their surface: their expression does not concatenate
// back to it, so constituent offsets would be unreliable.
func compoundParts(tk tokenizer.Token, base nori.SessionToken) []nori.SessionToken {
	if base.POSType != "COMPOUND" {
		return nil
	}
	expr := feature(tk.Features(), featExpression)
	if expr == "" {
		return nil
	}

	split := strings.Split(expr, "+")
	parts := make([]nori.SessionToken, 0, len(split))
	start := tk.Start
	for _, p := range split {
		fields := strings.Split(p, "/")
		if len(fields) < 2 || fields[0] == "" {
			// 표현이 깨져 있으면 합성어를 그대로 둔다.
			return nil
		}
		surface, tag := fields[0], fields[1]
		end := start + len([]rune(surface))
		if end > tk.End {
			end = tk.End
		}
		parts = append(parts, nori.SessionToken{
			Surface:  surface,
			PosInc:   1,
			Start:    start,
			End:      end,
			Type:     base.Type,
			POSType:  "MORPHEME",
			LeftPOS:  tag,
			RightPOS: tag,
		})
		start = end
	}
	return parts
}

// unigrams re-emits an unknown token as one single-rune token per character.
func unigrams(base nori.SessionToken) []nori.SessionToken {
	runes := []rune(base.Surface)
	if len(runes) <= 1 {
		return []nori.SessionToken{base}
	}
	out := make([]nori.SessionToken, len(runes))
	for i, r := range runes {
		out[i] = nori.SessionToken{
			Surface:  string(r),
			PosInc:   1,
			Start:    base.Start + i,
			End:      base.Start + i + 1,
			Type:     base.Type,
			POSType:  base.POSType,
			LeftPOS:  base.LeftPOS,
			RightPOS: base.RightPOS,
		}
	}
	return out
}

func filterStopTags(stop map[string]struct{}, in []nori.SessionToken) []nori.SessionToken {
	out := make([]nori.SessionToken, 0, len(in))
	pending := 0
	for _, st := range in {
		if stopped(stop, st.LeftPOS) {
			pending += st.PosInc
			continue
		}
		st.PosInc += pending
		pending = 0
		out = append(out, st)
	}
	return out
}

// stopped reports whether tag falls in the stop set. mecab-ko-dic carries
// fine tags (EC, JKS, ...) while the stop table may hold the coarse classes
// E and J, so those two classes also match by prefix.
func stopped(stop map[string]struct{}, tag string) bool {
	if tag == "" {
		return false
	}
	if _, ok := stop[tag]; ok {
		return true
	}
	head := tag[:1]
	if head == "E" || head == "J" {
		if _, ok := stop[head]; ok {
			return true
		}
	}
	return false
}

// session replays a materialized token stream through the staged pull
// protocol. Segmentation already happened at open time, so Err never fires
// here; the protocol checks still hold for misuse.
type session struct {
	tokens []nori.SessionToken
	cursor int
	ended  bool
	closed bool
}

func newSession(tokens []nori.SessionToken) *session {
	return &session{tokens: tokens, cursor: -1}
}

func (s *session) Reset() error {
	if s.closed {
		return errors.New("session closed")
	}
	s.cursor = -1
	s.ended = false
	return nil
}

func (s *session) Next() bool {
	if s.closed || s.ended || s.cursor+1 >= len(s.tokens) {
		return false
	}
	s.cursor++
	return true
}

func (s *session) Token() nori.SessionToken {
	if s.cursor < 0 || s.cursor >= len(s.tokens) {
		return nori.SessionToken{}
	}
	return s.tokens[s.cursor]
}

func (s *session) Err() error { return nil }

func (s *session) End() error {
	if s.closed {
		return errors.New("session closed")
	}
	if s.cursor+1 < len(s.tokens) {
		return errors.New("stream not exhausted")
	}
	s.ended = true
	return nil
}

func (s *session) Close() error {
	s.closed = true
	return nil
}
