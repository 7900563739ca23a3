package nori

import "github.com/pkg/errors"

// collect drives a session to completion and materializes the ordered term
// list. The position accumulator and the output slice are local to the call
// so a single Analyzer can serve concurrent callers. The session is closed
// on every path.
func collect(s Session) (terms []Term, err error) {
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			terms = nil
			err = &StreamReadError{Err: errors.Wrap(cerr, "close session")}
		}
	}()

	if rerr := s.Reset(); rerr != nil {
		return nil, &StreamReadError{Err: rerr}
	}

	terms = []Term{}
	position := 0
	for s.Next() {
		tk := s.Token()
		position += tk.PosInc
		terms = append(terms, Term{
			Surface:  tk.Surface,
			Position: position,
			Start:    tk.Start,
			End:      tk.End,
			Type:     tk.Type,
			POSType:  tk.POSType,
			LeftPOS:  tk.LeftPOS,
			RightPOS: tk.RightPOS,
			Reading:  tk.Reading,
		})
	}
	if serr := s.Err(); serr != nil {
		return nil, &StreamReadError{Err: serr}
	}
	if eerr := s.End(); eerr != nil {
		return nil, &StreamReadError{Err: eerr}
	}
	return terms, nil
}
