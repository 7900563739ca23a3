package nori

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DecompoundMode controls how compound dictionary entries are emitted.
type DecompoundMode int

const (
	// DecompoundNone keeps compounds whole.
	DecompoundNone DecompoundMode = iota + 1
	// DecompoundDiscard emits only the constituent morphemes.
	DecompoundDiscard
	// DecompoundMixed emits the compound followed by its constituents, the
	// first constituent sharing the compound's position.
	DecompoundMixed
)

func (m DecompoundMode) String() string {
	switch m {
	case DecompoundNone:
		return "none"
	case DecompoundDiscard:
		return "discard"
	case DecompoundMixed:
		return "mixed"
	}
	return "unknown"
}

func ParseDecompoundMode(s string) (DecompoundMode, error) {
	switch strings.ToLower(s) {
	case "none":
		return DecompoundNone, nil
	case "discard":
		return DecompoundDiscard, nil
	case "mixed":
		return DecompoundMixed, nil
	}
	return 0, errors.Errorf("unknown decompound mode %q", s)
}

// DefaultUserDictPath is where the BASIC preset looks for the bundled user
// dictionary.
const DefaultUserDictPath = "userdict/userdict_ko.txt"

// BASIC 프리셋이 제외하는 품사. 조사/어미/감탄사 등 기능 형태소와 미지 분류.
var basicStopTags = []string{
	"E", "IC", "J", "MAJ", "MM", "SP", "SSC", "SSO",
	"SE", "XPN", "XSA", "XSN", "XSV", "UNA", "NA", "VSV",
}

// DefaultStopTags returns a fresh copy of the BASIC stop-tag set. The exact
// membership is policy, not contract; callers may add or remove tags before
// building a Config.
func DefaultStopTags() map[string]struct{} {
	set := make(map[string]struct{}, len(basicStopTags))
	for _, tag := range basicStopTags {
		set[tag] = struct{}{}
	}
	return set
}

// UserDict carries the raw line-oriented entries of a user dictionary. The
// entry format belongs to the segmentation engine; the core only transports
// lines, so a malformed dictionary surfaces when a session is opened.
type UserDict struct {
	entries []string
}

func (d *UserDict) Entries() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.entries...)
}

func OpenUserDict(path string) (*UserDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open user dictionary")
	}
	defer f.Close()
	return ReadUserDict(f)
}

// ReadUserDict reads user dictionary entries, skipping blank lines and
// #-comments.
func ReadUserDict(r io.Reader) (*UserDict, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read user dictionary")
	}
	return &UserDict{entries: entries}, nil
}

// Config holds the analysis policy for an Analyzer. Treated as read-only
// after construction; safe to share across concurrent calls.
type Config struct {
	DecompoundMode        DecompoundMode
	StopTags              map[string]struct{}
	OutputUnknownUnigrams bool
	UserDict              *UserDict
}

// NewBasicConfig builds the BASIC preset: mixed decompounding, the default
// stop-tag set, no unknown unigrams, and the bundled user dictionary. A
// missing or unreadable dictionary is not fatal: the degradation is logged
// and analysis proceeds on the base dictionary alone.
func NewBasicConfig() *Config {
	udict, err := OpenUserDict(DefaultUserDictPath)
	if err != nil {
		slog.Warn("nori: user dictionary unavailable, proceeding without it",
			"path", DefaultUserDictPath, "error", err)
		udict = nil
	}
	return &Config{
		DecompoundMode:        DecompoundMixed,
		StopTags:              DefaultStopTags(),
		OutputUnknownUnigrams: false,
		UserDict:              udict,
	}
}

// NewConfig builds a fully explicit configuration. No defaulting and no
// I/O; a nil user dictionary is valid and falls back to base dictionary
// behavior.
func NewConfig(udict *UserDict, mode DecompoundMode, stopTags map[string]struct{}, outputUnknownUnigrams bool) *Config {
	return &Config{
		DecompoundMode:        mode,
		StopTags:              stopTags,
		OutputUnknownUnigrams: outputUnknownUnigrams,
		UserDict:              udict,
	}
}

type configFile struct {
	DecompoundMode        string   `toml:"decompound_mode"`
	StopTags              []string `toml:"stop_tags"`
	OutputUnknownUnigrams bool     `toml:"output_unknown_unigrams"`
	UserDictPath          string   `toml:"user_dict"`
}

// LoadConfig reads an analyzer configuration from a TOML file. An omitted
// decompound_mode defaults to mixed and an omitted stop_tags list to the
// BASIC set. Unlike the BASIC preset, an explicitly configured user_dict
// path that cannot be read is an error.
func LoadConfig(path string) (*Config, error) {
	var cf configFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return nil, errors.Wrap(err, "decode analyzer config")
	}

	mode := DecompoundMixed
	if cf.DecompoundMode != "" {
		m, err := ParseDecompoundMode(cf.DecompoundMode)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	stopTags := DefaultStopTags()
	if cf.StopTags != nil {
		stopTags = make(map[string]struct{}, len(cf.StopTags))
		for _, tag := range cf.StopTags {
			stopTags[tag] = struct{}{}
		}
	}

	var udict *UserDict
	if cf.UserDictPath != "" {
		d, err := OpenUserDict(cf.UserDictPath)
		if err != nil {
			return nil, err
		}
		udict = d
	}

	return &Config{
		DecompoundMode:        mode,
		StopTags:              stopTags,
		OutputUnknownUnigrams: cf.OutputUnknownUnigrams,
		UserDict:              udict,
	}, nil
}
