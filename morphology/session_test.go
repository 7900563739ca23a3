package morphology

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/morphkit/nori"
)

func TestFilterStopTags_AbsorbsIncrements(t *testing.T) {
	stop := map[string]struct{}{"J": {}, "SF": {}}
	in := []nori.SessionToken{
		{Surface: "나", PosInc: 1, LeftPOS: "NP"},
		{Surface: "는", PosInc: 1, LeftPOS: "JX"},
		{Surface: "학교", PosInc: 1, LeftPOS: "NNG"},
		{Surface: ".", PosInc: 1, LeftPOS: "SF"},
	}

	got := filterStopTags(stop, in)

	want := []nori.SessionToken{
		{Surface: "나", PosInc: 1, LeftPOS: "NP"},
		{Surface: "학교", PosInc: 2, LeftPOS: "NNG"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filtered stream mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterStopTags_DroppedCompoundPromotesConstituent(t *testing.T) {
	// MIXED 분해 결과에서 합성어가 제거되면 첫 구성 형태소가 그 자리를 물려받는다.
	stop := map[string]struct{}{"XSN": {}}
	in := []nori.SessionToken{
		{Surface: "분석기", PosInc: 1, LeftPOS: "XSN"},
		{Surface: "분석", PosInc: 0, LeftPOS: "NNG"},
		{Surface: "기", PosInc: 1, LeftPOS: "NNG"},
	}

	got := filterStopTags(stop, in)
	if len(got) != 2 {
		t.Fatalf("kept %d tokens, want 2: %v", len(got), got)
	}
	if got[0].PosInc != 1 {
		t.Errorf("first constituent PosInc = %d, want 1", got[0].PosInc)
	}
}

func TestFilterStopTags_EmptySet(t *testing.T) {
	in := []nori.SessionToken{
		{Surface: "은", PosInc: 1, LeftPOS: "JX"},
	}
	got := filterStopTags(map[string]struct{}{}, in)
	if len(got) != 1 {
		t.Errorf("kept %d tokens, want 1", len(got))
	}
}

func TestStopped(t *testing.T) {
	stop := map[string]struct{}{"E": {}, "J": {}, "SP": {}, "XSV": {}}
	tests := []struct {
		tag  string
		want bool
	}{
		{"JKS", true}, // 조사는 코스 클래스 J로 걸린다
		{"JX", true},
		{"EC", true},
		{"EF", true},
		{"SP", true},
		{"XSV", true},
		{"NNG", false},
		{"SF", false}, // S류는 접두 일치 없음
		{"SSO", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := stopped(stop, tt.tag); got != tt.want {
			t.Errorf("stopped(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestUnigrams(t *testing.T) {
	base := nori.SessionToken{
		Surface: "Go言語", PosInc: 1, Start: 3, End: 6,
		Type: "UNKNOWN", POSType: "MORPHEME", LeftPOS: "SL", RightPOS: "SL",
	}
	got := unigrams(base)
	if len(got) != 4 {
		t.Fatalf("got %d unigrams, want 4", len(got))
	}
	for i, u := range got {
		if u.Start != base.Start+i || u.End != base.Start+i+1 {
			t.Errorf("unigram %d offsets = (%d,%d)", i, u.Start, u.End)
		}
		if u.PosInc != 1 {
			t.Errorf("unigram %d PosInc = %d, want 1", i, u.PosInc)
		}
	}
}

func TestUnigrams_SingleRunePassthrough(t *testing.T) {
	base := nori.SessionToken{Surface: "x", PosInc: 1, Start: 0, End: 1}
	got := unigrams(base)
	if len(got) != 1 || got[0] != base {
		t.Errorf("single-rune token should pass through unchanged: %v", got)
	}
}

func TestFeature(t *testing.T) {
	fs := []string{"NNG", "*", "T", "형태", "Compound"}
	if got := feature(fs, featPOS); got != "NNG" {
		t.Errorf("featPOS = %q", got)
	}
	if got := feature(fs, featMeaningClass); got != "" {
		t.Errorf("placeholder should map to empty, got %q", got)
	}
	if got := feature(fs, featExpression); got != "" {
		t.Errorf("out-of-range feature should be empty, got %q", got)
	}
}

func TestSession_Protocol(t *testing.T) {
	s := newSession([]nori.SessionToken{
		{Surface: "하나", PosInc: 1},
		{Surface: "둘", PosInc: 1},
	})

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	var surfaces []string
	for s.Next() {
		surfaces = append(surfaces, s.Token().Surface)
	}
	if len(surfaces) != 2 {
		t.Fatalf("pulled %d tokens, want 2", len(surfaces))
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err: %v", err)
	}
	if err := s.End(); err != nil {
		t.Errorf("End: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	// Close는 멱등
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestSession_EndBeforeExhaustion(t *testing.T) {
	s := newSession([]nori.SessionToken{{Surface: "하나"}, {Surface: "둘"}})
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	s.Next()
	if err := s.End(); err == nil {
		t.Error("End before exhaustion should fail")
	}
}

func TestSession_ClosedRefusesReset(t *testing.T) {
	s := newSession(nil)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err == nil {
		t.Error("Reset after Close should fail")
	}
	if s.Next() {
		t.Error("Next after Close should be false")
	}
}

func TestSession_ResetRewinds(t *testing.T) {
	s := newSession([]nori.SessionToken{{Surface: "하나"}})
	s.Reset()
	for s.Next() {
	}
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	if !s.Next() {
		t.Error("expected token after rewind")
	}
	if s.Token().Surface != "하나" {
		t.Errorf("Token = %q", s.Token().Surface)
	}
}
