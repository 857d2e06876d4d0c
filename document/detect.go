package document

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// srcEncoding is encoding detected from byte order mark.
type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

func (e srcEncoding) String() string {
	switch e {
	case encUTF8:
		return "utf-8"
	case encUTF16BigEndian:
		return "utf-16be"
	case encUTF16LittleEndian:
		return "utf-16le"
	case encUTF32BigEndian:
		return "utf-32be"
	case encUTF32LittleEndian:
		return "utf-32le"
	default:
		return "unknown"
	}
}

// headerSize is enough for both filetype matchers and BOM detection.
const headerSize = 262

var markupExtensions = []string{".html", ".htm", ".xhtml", ".xml", ".ui"}

// Extensions returns file name extensions of recognized markup documents.
func Extensions() []string {
	return slices.Clone(markupExtensions)
}

var markupType = filetype.NewType("ui", "application/xhtml+xml")

func init() {
	filetype.AddMatcher(markupType, markupMatcher)
}

// markupMatcher recognizes text starting (after optional BOM, prolog and
// blanks) with an element, comment, processing instruction or doctype.
func markupMatcher(buf []byte) bool {
	switch detectUTF(buf) {
	case encUTF8:
		buf = buf[3:]
	case encUnknown:
	default:
		// wide encodings are checked after decoding
		return true
	}
	buf = bytes.TrimLeft(buf, " \t\r\n")
	return len(buf) > 1 && buf[0] == '<' && (isNameStart(buf[1]) || buf[1] == '?' || buf[1] == '!')
}

func isNameStart(c byte) bool {
	return c == '_' || c == ':' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func hasMarkupExtension(name string) bool {
	return slices.Contains(markupExtensions, strings.ToLower(filepath.Ext(name)))
}

func readHeader(r io.Reader) ([]byte, error) {
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

// isArchiveFile checks extension and content of the file.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHeader(f)
	if err != nil {
		return false, fmt.Errorf("unable to read file header: %w", err)
	}
	return filetype.Is(head, "zip"), nil
}

// isMarkupFile checks extension and content of the file, returning encoding
// detected from BOM.
func isMarkupFile(path string) (bool, srcEncoding, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	if !hasMarkupExtension(path) {
		return false, encUnknown, nil
	}
	head, err := readHeader(f)
	if err != nil {
		return false, encUnknown, fmt.Errorf("unable to read file header: %w", err)
	}
	return filetype.Is(head, markupType.Extension), detectUTF(head), nil
}

// isMarkupInArchive is isMarkupFile for archive entry.
func isMarkupInArchive(f *zip.File, name string) (bool, srcEncoding, error) {
	if !hasMarkupExtension(name) {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	head, err := readHeader(r)
	if err != nil {
		return false, encUnknown, fmt.Errorf("unable to read entry header: %w", err)
	}
	return filetype.Is(head, markupType.Extension), detectUTF(head), nil
}

func detectUTF(buf []byte) srcEncoding {
	switch {
	// 4 bytes BOMs must be checked first, UTF-32LE starts with UTF-16LE BOM
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	default:
		return encUnknown
	}
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

// selectReader wraps r into decoder removing BOM and converting text to
// UTF-8. For encUnknown r is returned unchanged.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	default:
		panic(fmt.Sprintf("unexpected source encoding %d", enc))
	}
}
