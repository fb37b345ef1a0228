// Package regfile renders a settings table as a Windows Registry Editor
// Version 5.00 (.reg) file, with the value syntax regedit itself writes.
package regfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/hiveprep/pkg/settings"
)

const (
	// Header is the required first line of a version 5.00 .reg file.
	Header = "Windows Registry Editor Version 5.00"

	crlf = "\r\n"

	// EncodingUTF8 and EncodingUTF16LE name the supported output encodings.
	// Regedit writes UTF-16LE with a byte order mark.
	EncodingUTF8    = "UTF-8"
	EncodingUTF16LE = "UTF-16LE"
)

// Options controls export output.
type Options struct {
	// Root is the registry root the key paths are prefixed with, for
	// example `HKEY_USERS\DefaultProfile`.
	Root string

	// Encoding selects the output encoding; empty means UTF-8.
	Encoding string

	// WithBOM prepends a byte order mark. Only honored for UTF-16LE.
	WithBOM bool
}

// Export renders the settings as .reg text in the requested encoding.
// Values within a key are emitted in sorted name order.
func Export(list []settings.Setting, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Header + crlf + crlf)

	for _, s := range list {
		buf.WriteString("[")
		if opts.Root != "" {
			buf.WriteString(opts.Root + `\`)
		}
		buf.WriteString(s.Path)
		buf.WriteString("]" + crlf)
		for _, name := range s.ValueNames() {
			emitValue(&buf, name, s.Values[name])
		}
		buf.WriteString(crlf)
	}

	switch strings.ToUpper(opts.Encoding) {
	case "", EncodingUTF8:
		return buf.Bytes(), nil
	case EncodingUTF16LE:
		bom := unicode.IgnoreBOM
		if opts.WithBOM {
			bom = unicode.UseBOM
		}
		enc := unicode.UTF16(unicode.LittleEndian, bom).NewEncoder()
		out, _, err := transform.Bytes(enc, buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("failed to encode .reg output: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, opts.Encoding)
	}
}

func emitValue(buf *bytes.Buffer, name string, v settings.Value) {
	buf.WriteString(`"` + escapeString(name) + `"=`)

	switch v.Kind {
	case settings.KindString:
		buf.WriteString(`"` + escapeString(v.Str) + `"`)
	case settings.KindExpandString:
		// REG_EXPAND_SZ is carried as hex(2): UTF-16LE bytes.
		buf.WriteString("hex(2):" + formatHex(encodeUTF16LE(v.Str)))
	case settings.KindDWORD:
		fmt.Fprintf(buf, "dword:%08x", uint32(v.Num))
	case settings.KindQWORD:
		data := make([]byte, 8)
		binary.LittleEndian.PutUint64(data, v.Num)
		buf.WriteString("hex(b):" + formatHex(data))
	case settings.KindMultiString:
		buf.WriteString("hex(7):" + formatHex(encodeMultiString(v.Strs)))
	case settings.KindBinary:
		buf.WriteString("hex:" + formatHex(v.Bytes))
	default:
		fmt.Fprintf(buf, "hex(%x):%s", uint32(v.Kind), formatHex(v.Bytes))
	}
	buf.WriteString(crlf)
}

// escapeString escapes backslashes and quotes for .reg string syntax.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// encodeUTF16LE encodes a string as null-terminated UTF-16LE bytes.
func encodeUTF16LE(s string) []byte {
	codes := utf16.Encode([]rune(s))
	buf := make([]byte, (len(codes)+1)*2)
	for i, c := range codes {
		binary.LittleEndian.PutUint16(buf[i*2:], c)
	}
	return buf
}

// encodeMultiString encodes strings as UTF-16LE with a double null
// terminator, the REG_MULTI_SZ wire form.
func encodeMultiString(strs []string) []byte {
	var buf []byte
	for _, s := range strs {
		buf = append(buf, encodeUTF16LE(s)...)
	}
	return append(buf, 0, 0)
}

// formatHex renders bytes as the comma-separated lowercase hex .reg uses.
func formatHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ",")
}
