package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// entry is one log record as captured by the facade. It lives only long
// enough to be encoded and written.
type entry struct {
	Time    time.Time
	Level   Level
	Subject string
	Message string
}

// encoder turns an entry into an appendable byte record. Implementations are
// stateless; one is selected per Format at construction.
type encoder interface {
	encode(e entry) ([]byte, error)
}

// newEncoder returns the encoder for a format
func newEncoder(f Format) (encoder, error) {
	switch f {
	case FormatDelimited:
		return delimitedEncoder{}, nil
	case FormatLineObject:
		return lineObjectEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormat, f)
	}
}

// delimitedEncoder writes records as quoted comma-separated rows.
// Every field is quoted, with embedded quotes doubled, so subjects and
// messages containing commas or quotes never break column alignment.
// Rows are CRLF-terminated for delimited-row consumers.
type delimitedEncoder struct{}

func (delimitedEncoder) encode(e entry) ([]byte, error) {
	fields := [4]string{
		e.Level.String(),
		e.Time.Format(time.RFC3339),
		e.Subject,
		e.Message,
	}

	var b bytes.Buffer
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
	return b.Bytes(), nil
}

// lineObjectEncoder writes one self-describing JSON object per line, so the
// file is a stream of independently parsable records.
type lineObjectEncoder struct{}

type lineObject struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (lineObjectEncoder) encode(e entry) ([]byte, error) {
	b, err := json.Marshal(lineObject{
		Time:    e.Time.Format(time.RFC3339),
		Level:   e.Level.String(),
		Subject: e.Subject,
		Message: e.Message,
	})
	if err != nil {
		// Unreachable for the fixed string field set; surfaced anyway
		// rather than dropping the record.
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return append(b, '\n'), nil
}
