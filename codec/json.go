package codec

import (
	"bytes"
	"fmt"
	"io"
	"math"

	j "github.com/goccy/go-json"

	bem "github.com/reoring/bem"
	"github.com/reoring/bem/i18n"
)

// ModifierFromJSON decodes one JSON value into a modifier input. Strings and
// numbers become literal parts, arrays become sequences, and objects become
// ordered condition maps whose entries keep the source key order. Booleans
// and null contribute nothing by themselves and are meaningful only as
// condition values. A nil Mod with nil error means the value normalizes to
// nothing (for example a bare false).
func ModifierFromJSON(data []byte) (bem.Mod, error) {
	dec := newJSONDecoder(data)
	m, _, err := readModValue(dec)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func newJSONDecoder(data []byte) *j.Decoder {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}

func parseIssue(err error) bem.Issues {
	return bem.Issues{{
		Path:    "/",
		Code:    bem.CodeParseError,
		Message: i18n.T(bem.CodeParseError, nil),
		Cause:   err,
	}}
}

// readModValue consumes one JSON value and reports its modifier contribution
// together with its truthiness (used when the value sits under a condition
// key).
func readModValue(dec *j.Decoder) (bem.Mod, bool, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, false, parseIssue(err)
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '[':
			var seq bem.Seq
			for dec.More() {
				m, _, err := readModValue(dec)
				if err != nil {
					return nil, false, err
				}
				if m != nil {
					seq = append(seq, m)
				}
			}
			if _, err := dec.Token(); err != nil { // ']'
				return nil, false, parseIssue(err)
			}
			return seq, true, nil
		case '{':
			var conds bem.Conds
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, false, parseIssue(err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, false, parseIssue(fmt.Errorf("codec: unexpected object key token %v", keyTok))
				}
				_, on, err := readModValue(dec)
				if err != nil {
					return nil, false, err
				}
				conds = append(conds, bem.When(key, on))
			}
			if _, err := dec.Token(); err != nil { // '}'
				return nil, false, parseIssue(err)
			}
			return conds, true, nil
		}
		return nil, false, parseIssue(fmt.Errorf("codec: unexpected delimiter %q", v))
	case string:
		return bem.S(v), v != "", nil
	case j.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, false, parseIssue(err)
		}
		return bem.N(f), f != 0 && !math.IsNaN(f), nil
	case float64:
		// decoders without UseNumber hand out float64
		return bem.N(v), v != 0 && !math.IsNaN(v), nil
	case bool:
		return nil, v, nil
	case nil:
		return nil, false, nil
	}
	return nil, false, parseIssue(fmt.Errorf("codec: unexpected token %v", tok))
}

// skipJSONValue consumes and discards one JSON value.
func skipJSONValue(dec *j.Decoder) error {
	_, _, err := readModValue(dec)
	return err
}

// expectDelim consumes one token and requires it to be the given delimiter.
func expectDelim(dec *j.Decoder, d rune) error {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return parseIssue(io.ErrUnexpectedEOF)
		}
		return parseIssue(err)
	}
	if dl, ok := tok.(j.Delim); !ok || rune(dl) != d {
		return parseIssue(fmt.Errorf("codec: expected %q, got %v", d, tok))
	}
	return nil
}
