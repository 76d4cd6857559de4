package logging

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	simplejson "github.com/bitly/go-simplejson"
)

// Format selects how records are written.
type Format string

const (
	FormatText Format = "text" // "level: message {fields}"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// Decode parses one JSON object into a Record. The level field is required;
// "msg" is accepted when "message" is absent. A message that is not a
// string is kept as its JSON text.
func Decode(line []byte) (*Record, error) {
	js, err := simplejson.NewJson(line)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := js.Map(); err != nil {
		return nil, fmt.Errorf("record is not a JSON object")
	}

	level, err := js.Get(LevelField).String()
	if err != nil {
		return nil, fmt.Errorf("record has no string %q field", LevelField)
	}
	js.Del(LevelField)

	msgField := MessageField
	if _, ok := js.CheckGet(msgField); !ok {
		msgField = "msg"
	}
	message, err := messageText(js.Get(msgField))
	if err != nil {
		return nil, fmt.Errorf("record %q field: %w", msgField, err)
	}
	js.Del(msgField)

	rec := NewRecord(level, message)
	if fields := js.MustMap(); len(fields) > 0 {
		rec.Fields = fields
	}
	return rec, nil
}

func messageText(v *simplejson.Json) (string, error) {
	switch m := v.Interface().(type) {
	case nil:
		return "", nil
	case string:
		return m, nil
	default:
		b, err := v.Encode()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// Encode renders rec in the given format, without a trailing newline.
func Encode(rec *Record, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		js := simplejson.New()
		for k, v := range rec.Fields {
			js.Set(k, v)
		}
		js.Set(LevelField, rec.Level)
		js.Set(MessageField, rec.Message)
		return js.Encode()
	default:
		var buf bytes.Buffer
		buf.WriteString(rec.Level)
		buf.WriteString(": ")
		buf.WriteString(rec.Message)
		if len(rec.Fields) > 0 {
			js := simplejson.New()
			for k, v := range rec.Fields {
				js.Set(k, v)
			}
			rest, err := js.Encode()
			if err != nil {
				return nil, err
			}
			buf.WriteByte(' ')
			buf.Write(rest)
		}
		return buf.Bytes(), nil
	}
}

// ReadRecords decodes newline-delimited JSON records from r and calls fn
// for each one with its 1-based line number. Blank lines are skipped.
// Iteration stops at the first error from decoding or from fn.
func ReadRecords(r io.Reader, fn func(line int, rec *Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for sc.Scan() {
		n++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		rec, err := Decode(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if err := fn(n, rec); err != nil {
			return err
		}
	}
	return sc.Err()
}
