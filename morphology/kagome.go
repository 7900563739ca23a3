// Package morphology implements the segmentation engine on kagome and the
// mecab-ko-dic Korean system dictionary.
package morphology

import (
	"strings"

	ko "github.com/ikawaha/kagome-dict-ko"
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/pkg/errors"

	"github.com/morphkit/nori"
)

// Kagome is the mecab-ko-dic backed segmentation engine.
// kagome에 직접 의존하지 않도록 nori.SegmentationEngine 뒤로 감싼다.
type Kagome struct {
	base *dict.Dict
}

// NewKagome loads the bundled mecab-ko-dic system dictionary. The dictionary
// is shared read-only by all sessions.
func NewKagome() *Kagome {
	return &Kagome{base: ko.Dict()}
}

// OpenSession segments text under cfg and materializes the filtered token
// stream for one call. A user dictionary that cannot be parsed fails the
// session here, before any token is produced.
func (k *Kagome) OpenSession(cfg *nori.Config, text string) (nori.Session, error) {
	opts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if cfg.UserDict != nil {
		udict, err := buildUserDict(cfg.UserDict)
		if err != nil {
			return nil, errors.Wrap(err, "user dictionary")
		}
		opts = append(opts, tokenizer.UserDict(udict))
	}

	t, err := tokenizer.New(k.base, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "init tokenizer")
	}

	return newSession(materialize(cfg, t.Tokenize(text))), nil
}

func buildUserDict(d *nori.UserDict) (*dict.UserDict, error) {
	records, err := dict.NewUserDicRecords(strings.NewReader(strings.Join(d.Entries(), "\n")))
	if err != nil {
		return nil, err
	}
	return records.NewUserDict()
}
