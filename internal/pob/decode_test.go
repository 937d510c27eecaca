package pob

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
)

// encodeExport produces an export code the way PoB does.
func encodeExport(t *testing.T, raw []byte) string {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return base64.RawURLEncoding.EncodeToString(buf.Bytes())
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestDecompress_RoundTrip(t *testing.T) {
	xml := readFixture(t, "modern.xml")
	code := encodeExport(t, xml)

	text, err := Decompress(code)
	require.NoError(t, err)
	assert.Equal(t, string(xml), text)
}

func TestDecompress_TrimsWhitespaceAndPadding(t *testing.T) {
	code := encodeExport(t, []byte("<PathOfBuilding/>"))

	text, err := Decompress("  \n" + code + "==\n")
	require.NoError(t, err)
	assert.Equal(t, "<PathOfBuilding/>", text)
}

func TestDecompress_Windows1252Fallback(t *testing.T) {
	// 0xE9 is é in Windows-1252 and not valid UTF-8 on its own.
	code := encodeExport(t, []byte("Caf\xe9"))

	text, err := Decompress(code)
	require.NoError(t, err)
	assert.Equal(t, "Café", text)
}

func TestDecompress_Errors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want errors.ErrorCode
	}{
		{"invalid base64", "not*base64!", errors.ErrBase64Decode},
		{"standard alphabet", "ab+/", errors.ErrBase64Decode},
		{"not zlib", base64.RawURLEncoding.EncodeToString([]byte("plain text")), errors.ErrDeflate},
		{"empty", "", errors.ErrDeflate},
		{"undefined windows-1252 byte", encodeExport(t, []byte("Caf\x81")), errors.ErrStringDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompress(tt.code)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, errors.IsBadBuildCode(err))
		})
	}
}

func TestDecompress_TruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(bytes.Repeat([]byte("PathOfBuilding"), 100))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	truncated := buf.Bytes()[:buf.Len()/2]

	_, err = Decompress(base64.RawURLEncoding.EncodeToString(truncated))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDeflate))
}

func TestFromExport_Idempotent(t *testing.T) {
	code := encodeExport(t, readFixture(t, "modern.xml"))

	first, err := FromExport(code)
	require.NoError(t, err)
	second, err := FromExport(code)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, uint8(95), first.Level)
}

func TestFromExport_ParseError(t *testing.T) {
	code := encodeExport(t, []byte("<PathOfBuilding><Build></PathOfBuilding>"))

	_, err := FromExport(code)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrParseXML))
	assert.True(t, errors.IsBadBuildCode(err))
}
