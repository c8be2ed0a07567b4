package outline

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding selects how input bytes are decoded before scanning.
type Encoding string

const (
	// EncodingAuto honors a UTF-8 or UTF-16 byte order mark and otherwise
	// reads UTF-8.
	EncodingAuto Encoding = "auto"

	// EncodingUTF8 reads UTF-8, dropping a leading byte order mark.
	EncodingUTF8 Encoding = "utf8"

	// EncodingUTF16 reads UTF-16, little-endian unless a byte order mark
	// says otherwise.
	EncodingUTF16 Encoding = "utf16"

	// EncodingWindows1252 reads the Windows-1252 (Latin-1 superset) code
	// page.
	EncodingWindows1252 Encoding = "windows1252"
)

// ParseEncoding converts an encoding name to an Encoding. Matching is case
// insensitive and ignores dashes, so "UTF-16" and "windows-1252" work.
func ParseEncoding(s string) (Encoding, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	switch norm {
	case "", string(EncodingAuto):
		return EncodingAuto, nil
	case string(EncodingUTF8):
		return EncodingUTF8, nil
	case string(EncodingUTF16), "utf16le":
		return EncodingUTF16, nil
	case string(EncodingWindows1252), "cp1252", "latin1":
		return EncodingWindows1252, nil
	default:
		return "", fmt.Errorf("outline: unsupported encoding %q", s)
	}
}

// decoder wraps r so that it yields UTF-8.
func decoder(r io.Reader, enc Encoding) (io.Reader, error) {
	var t transform.Transformer
	switch enc {
	case "", EncodingAuto:
		t = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	case EncodingUTF8:
		t = unicode.UTF8BOM.NewDecoder()
	case EncodingUTF16:
		t = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case EncodingWindows1252:
		t = charmap.Windows1252.NewDecoder()
	default:
		return nil, fmt.Errorf("outline: unsupported encoding %q", enc)
	}
	return transform.NewReader(r, t), nil
}
