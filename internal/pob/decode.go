package pob

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
)

// Decompress reverses the PoB export encoding and returns the build XML.
//
// The input is URL-safe base64 without padding wrapping a zlib stream. The
// inflated bytes are UTF-8, or Windows-1252 for some older exports.
func Decompress(code string) (string, error) {
	data, err := decodeBase64(code)
	if err != nil {
		return "", err
	}

	raw, err := inflate(data)
	if err != nil {
		return "", err
	}

	return decodeText(raw)
}

// FromExport decodes an export code into a Build.
func FromExport(code string) (*Build, error) {
	text, err := Decompress(code)
	if err != nil {
		return nil, err
	}
	return ParseXML(text)
}

func decodeBase64(code string) ([]byte, error) {
	code = strings.TrimSpace(code)
	// Some sites re-encode the code with padding; the alphabet stays URL-safe.
	code = strings.TrimRight(code, "=")

	data, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return nil, errors.NewBase64Decode(err)
	}
	return data, nil
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewDeflate(err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewDeflate(err)
	}
	return out, nil
}

// decodeText returns raw as a string, falling back to a strict Windows-1252
// decode when raw is not valid UTF-8.
func decodeText(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.NewStringDecode(err)
	}
	// Undefined code points decode to U+FFFD; no defined byte maps there.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errors.NewStringDecode(fmt.Errorf("undefined windows-1252 byte in input"))
	}
	return string(out), nil
}
