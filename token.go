package nori

// Term is one analyzed morpheme together with the attributes the
// segmentation engine assigned to it. Offsets are rune offsets into the
// original input. Reading is empty when the engine has no phonetic mapping
// for the surface.
type Term struct {
	Surface  string `db:"surface" json:"surface"`
	Position int    `db:"position" json:"position"`
	Start    int    `db:"start_offset" json:"startOffset"`
	End      int    `db:"end_offset" json:"endOffset"`
	Type     string `db:"token_type" json:"tokenType"`
	POSType  string `db:"pos_type" json:"posType"`
	LeftPOS  string `db:"left_pos" json:"leftPOS"`
	RightPOS string `db:"right_pos" json:"rightPOS"`
	Reading  string `db:"reading" json:"reading,omitempty"`
}

func (t Term) HasReading() bool {
	return t.Reading != ""
}

// Surfaces extracts the surface forms of terms in order.
func Surfaces(terms []Term) []string {
	surfaces := make([]string, len(terms))
	for i, t := range terms {
		surfaces[i] = t.Surface
	}
	return surfaces
}
