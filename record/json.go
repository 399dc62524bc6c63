package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrNotObject is returned when decoding a record from a JSON value which
// is not an object.
var ErrNotObject = errors.New("JSON value is not an object")

// --- Decoding --------------------------------------------------------------

// Decode reads the next JSON value from dec as a record. The value has to
// be an object. Decode switches dec to decoding numbers as json.Number,
// keeping their literal text.
func Decode(dec *json.Decoder) (*Record, error) {
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: found %s", ErrNotObject, describe(tok))
	}
	return decodeObject(dec)
}

// decodeObject reads fields up to and including the closing brace.
func decodeObject(dec *json.Decoder) (*Record, error) {
	r := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid object key %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		if r.Has(key) {
			tracer().Debugf("duplicate field %q, last value wins", key)
		}
		r.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeArray(dec *json.Decoder) ([]interface{}, error) {
	arr := []interface{}{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); ok {
		switch d {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %v", d)
	}
	return tok, nil
}

func describe(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			return "array"
		}
		return t.String()
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", tok)
}

// UnmarshalJSON decodes a JSON object into r, replacing all of its fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	rec, err := Decode(dec)
	if err != nil {
		return err
	}
	r.fields = rec.fields
	return nil
}

// --- Encoding --------------------------------------------------------------

// MarshalJSON encodes r as a compact JSON object.
// Note that json.Marshal will HTML-escape the result.
func (r *Record) MarshalJSON() ([]byte, error) {
	p := &printer{}
	p.value(r)
	return p.buf.Bytes(), p.err
}

// MarshalList encodes records as a JSON array. Every nesting level is
// indented by indent. With a non-empty indent, the layout is that of
// JavaScript's JSON.stringify(records, null, indent): one value per line,
// empty arrays and objects as [] and {}, no trailing newline.
// Characters <, > and & are not escaped.
func MarshalList(records []*Record, indent string) ([]byte, error) {
	p := &printer{indent: indent}
	p.array(len(records), func(i int) {
		p.value(records[i])
	})
	return p.buf.Bytes(), p.err
}

type printer struct {
	buf    bytes.Buffer
	indent string
	depth  int
	err    error
}

func (p *printer) newline() {
	if p.indent == "" {
		return
	}
	p.buf.WriteByte('\n')
	for i := 0; i < p.depth; i++ {
		p.buf.WriteString(p.indent)
	}
}

func (p *printer) value(v interface{}) {
	switch x := v.(type) {
	case nil, jsonNull:
		p.buf.WriteString("null")
	case string:
		p.quote(x)
	case json.Number:
		p.buf.WriteString(x.String())
	case bool:
		p.buf.WriteString(strconv.FormatBool(x))
	case *Record:
		if x == nil {
			p.buf.WriteString("null")
			return
		}
		p.object(x)
	case []interface{}:
		p.array(len(x), func(i int) { p.value(x[i]) })
	case []string:
		p.array(len(x), func(i int) { p.quote(x[i]) })
	default:
		b, err := json.Marshal(x)
		if err != nil {
			p.err = err
			return
		}
		p.buf.Write(b)
	}
}

func (p *printer) object(r *Record) {
	if r.Len() == 0 {
		p.buf.WriteString("{}")
		return
	}
	p.buf.WriteByte('{')
	p.depth++
	first := true
	it := r.fields.Iterator()
	for it.Next() {
		if !first {
			p.buf.WriteByte(',')
		}
		first = false
		p.newline()
		p.quote(it.Key().(string))
		p.buf.WriteByte(':')
		if p.indent != "" {
			p.buf.WriteByte(' ')
		}
		p.value(it.Value())
	}
	p.depth--
	p.newline()
	p.buf.WriteByte('}')
}

func (p *printer) array(n int, elem func(int)) {
	if n == 0 {
		p.buf.WriteString("[]")
		return
	}
	p.buf.WriteByte('[')
	p.depth++
	for i := 0; i < n; i++ {
		if i > 0 {
			p.buf.WriteByte(',')
		}
		p.newline()
		elem(i)
	}
	p.depth--
	p.newline()
	p.buf.WriteByte(']')
}

// quote writes s as a JSON string. Only quotes, backslashes and control
// characters are escaped. Invalid UTF-8 is written as U+FFFD.
func (p *printer) quote(s string) {
	p.buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			p.buf.WriteString(`\"`)
		case '\\':
			p.buf.WriteString(`\\`)
		case '\b':
			p.buf.WriteString(`\b`)
		case '\f':
			p.buf.WriteString(`\f`)
		case '\n':
			p.buf.WriteString(`\n`)
		case '\r':
			p.buf.WriteString(`\r`)
		case '\t':
			p.buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&p.buf, `\u%04x`, r)
			} else {
				p.buf.WriteRune(r)
			}
		}
	}
	p.buf.WriteByte('"')
}
