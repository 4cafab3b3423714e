// Package charset converts corpus files between legacy single byte
// encodings and UTF-8.
package charset

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"corpusprep/internal/types"
)

// UTF8 is the default encoding name. Data in this encoding is never transformed.
const UTF8 = "utf8"

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var charmaps = map[string]*charmap.Charmap{
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"windows-1250": charmap.Windows1250,
	"windows-1252": charmap.Windows1252,
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
}

// Names returns the supported encoding names, UTF8 first.
func Names() []string {
	return []string{UTF8, "iso-8859-1", "iso-8859-2", "windows-1250", "windows-1252", "cp437", "cp850"}
}

// Lookup returns the x/text encoding registered under name.
// A nil encoding with a nil error means UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", UTF8, "utf-8":
		return nil, nil
	}

	cm, ok := charmaps[normalized]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported encoding %q", types.ErrArgument, name)
	}
	return cm, nil
}

func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ToUTF8 converts data from the source encoding to UTF-8.
// The UTF-8 BOM is stripped if present.
func ToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	enc, err := Lookup(sourceEncoding)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return stripUTF8BOM(data), nil
	}

	reader := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripUTF8BOM(utf8Data), nil
}

// FromUTF8 converts UTF-8 data to the target encoding.
func FromUTF8(data []byte, targetEncoding string) ([]byte, error) {
	enc, err := Lookup(targetEncoding)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return data, nil
	}

	reader := transform.NewReader(bytes.NewReader(data), enc.NewEncoder())
	encodedData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return encodedData, nil
}

// NewReader decodes r from the named encoding. Unlike ToUTF8 the BOM is kept,
// so that a file can be rewritten byte for byte.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// StringDecoder returns a function converting a single string from the named
// encoding to UTF-8. Bytes undefined in the charmap become U+FFFD, so the
// decoded string has exactly one rune per input byte.
func StringDecoder(name string) (func(string) string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return func(s string) string { return s }, nil
	}

	decoder := enc.NewDecoder()
	return func(s string) string {
		decoded, err := decoder.String(s)
		if err != nil {
			return s
		}
		return decoded
	}, nil
}
