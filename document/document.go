// Package document acquires markup documents: locates source on disk or
// inside zip archive, converts it to UTF-8 and parses it into node tree.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"uitree/archive"
	"uitree/config"
	"uitree/markup"
)

// Document is a single loaded and parsed markup source.
type Document struct {
	ID       uuid.UUID
	Source   string // as requested
	Path     string // file on disk, plain file or archive
	Entry    string // path inside archive, empty for plain files
	Encoding string // name of the original text encoding
	Data     []byte // UTF-8 text
	Root     *markup.Node
}

// Name returns base name of the source file.
func (d *Document) Name() string {
	if d.Entry != "" {
		return filepath.Base(d.Entry)
	}
	return filepath.Base(d.Path)
}

// InArchive reports whether document was read from zip archive.
func (d *Document) InArchive() bool {
	return d.Entry != ""
}

// Loader reads documents. It does not cache anything, every Load reads and
// parses source again.
type Loader struct {
	log      *zap.Logger
	forced   encoding.Encoding
	walker   archive.Walker
	maxBytes int64
}

func NewLoader(cfg *config.DocumentConfig, log *zap.Logger) (*Loader, error) {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{log: log.Named("document"), maxBytes: cfg.MaxSize}
	l.walker.MaxSize = cfg.MaxSize

	if cfg.Encoding != "" {
		enc, err := ianaindex.IANA.Encoding(cfg.Encoding)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("unknown source encoding %q: %w", cfg.Encoding, errors.Join(err, errUnsupported))
		}
		l.forced = enc
	}
	if cfg.ArchiveCodePage != "" {
		enc, err := ianaindex.IANA.Encoding(cfg.ArchiveCodePage)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("unknown archive code page %q: %w", cfg.ArchiveCodePage, errors.Join(err, errUnsupported))
		}
		l.walker.CodePage = enc
		n, _ := ianaindex.IANA.Name(enc)
		l.log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
	}
	return l, nil
}

var (
	errUnsupported = errors.New("unsupported")
	// ErrNotMarkup is returned when source does not look like markup document.
	ErrNotMarkup = errors.New("source was not recognized as markup document")
	// ErrTooLarge is returned when source exceeds document.max_size.
	ErrTooLarge = errors.New("source is too large")
)

// Resolve splits source into file system path and optional path inside zip
// archive ("ui.zip/screens/main.html").
func (l *Loader) Resolve(src string) (path, entry string, err error) {
	src, err = filepath.Abs(src)
	if err != nil {
		return "", "", err
	}

	for head := src; len(head) != 0; head = filepath.Dir(head) {
		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			if filepath.Dir(head) == head {
				break
			}
			continue
		}
		if fi.IsDir() {
			if head == src {
				return "", "", fmt.Errorf("source is a directory (%s)", src)
			}
			return "", "", fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		if !fi.Mode().IsRegular() {
			return "", "", fmt.Errorf("unexpected path mode for (%s)", head)
		}
		if head == src {
			return head, "", nil
		}
		isArchive, err := isArchiveFile(head)
		if err != nil {
			return "", "", fmt.Errorf("unable to check archive type: %w", err)
		}
		if !isArchive {
			return "", "", fmt.Errorf("file cannot have tail (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		entry = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
		return head, filepath.ToSlash(entry), nil
	}
	return "", "", fmt.Errorf("input source was not found (%s)", src)
}

// Load reads, decodes and parses source. Structural errors in markup are
// returned wrapped, the document is not returned in this case.
func (l *Loader) Load(ctx context.Context, src string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, entry, err := l.Resolve(src)
	if err != nil {
		return nil, err
	}

	doc := &Document{Source: src, Path: path, Entry: entry}
	if doc.ID, err = uuid.NewV7(); err != nil {
		return nil, fmt.Errorf("unable to generate document id: %w", err)
	}

	raw, bom, err := l.read(path, entry)
	if err != nil {
		return nil, err
	}

	if doc.Data, doc.Encoding, err = l.decode(raw, bom); err != nil {
		return nil, fmt.Errorf("unable to decode source (%s): %w", src, err)
	}
	if doc.Root, err = markup.Parse(doc.Data); err != nil {
		return nil, fmt.Errorf("unable to parse source (%s): %w", src, err)
	}

	l.log.Debug("Document loaded",
		zap.Stringer("id", doc.ID),
		zap.String("path", doc.Path),
		zap.String("entry", doc.Entry),
		zap.String("encoding", doc.Encoding),
		zap.Int("bytes", len(raw)),
		zap.Int("nodes", doc.Root.Count()))

	if doc.Root.IsError() {
		l.log.Warn("Document has no elements", zap.String("source", src))
	}
	return doc, nil
}

func (l *Loader) read(path, entry string) ([]byte, srcEncoding, error) {
	if entry == "" {
		ok, enc, err := isMarkupFile(path)
		if err != nil {
			return nil, encUnknown, fmt.Errorf("unable to check file type: %w", err)
		}
		if !ok {
			return nil, encUnknown, fmt.Errorf("%w (%s)", ErrNotMarkup, path)
		}
		data, err := l.readFile(path)
		if err != nil {
			return nil, encUnknown, err
		}
		return data, enc, nil
	}

	data, err := l.walker.ReadFile(path, entry)
	if errors.Is(err, archive.ErrTooLarge) {
		return nil, encUnknown, fmt.Errorf("%w (%s => %s): %w", ErrTooLarge, path, entry, err)
	}
	if err != nil {
		return nil, encUnknown, fmt.Errorf("unable to read from archive (%s): %w", path, err)
	}
	if !hasMarkupExtension(entry) || !markupMatcher(head(data)) {
		return nil, encUnknown, fmt.Errorf("%w (%s => %s)", ErrNotMarkup, path, entry)
	}
	return data, detectUTF(data), nil
}

// readFile reads plain file refusing to go over size limit.
func (l *Loader) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if l.maxBytes <= 0 {
		return io.ReadAll(f)
	}
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() > l.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d (%s)", ErrTooLarge, fi.Size(), l.maxBytes, path)
	}
	// file could grow after Stat
	data, err := io.ReadAll(io.LimitReader(f, l.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: limit is %d (%s)", ErrTooLarge, l.maxBytes, path)
	}
	return data, nil
}

func head(data []byte) []byte {
	if len(data) > headerSize {
		return data[:headerSize]
	}
	return data
}

// decode converts raw source to UTF-8. Byte order mark wins, then forced
// encoding, then encoding declared by document itself.
func (l *Loader) decode(raw []byte, bom srcEncoding) ([]byte, string, error) {
	if bom != encUnknown {
		data, err := io.ReadAll(selectReader(bytes.NewReader(raw), bom))
		return data, bom.String(), err
	}

	if l.forced != nil {
		data, err := l.forced.NewDecoder().Bytes(raw)
		name, _ := ianaindex.IANA.Name(l.forced)
		return data, name, err
	}

	if label := declaredEncoding(raw); label != "" {
		if enc, name := charset.Lookup(label); enc != nil {
			if name == "utf-8" {
				return raw, name, nil
			}
			r, err := charset.NewReaderLabel(label, bytes.NewReader(raw))
			if err != nil {
				return nil, "", err
			}
			data, err := io.ReadAll(r)
			return data, name, err
		}
		l.log.Warn("Unknown declared encoding, detecting", zap.String("charset", label))
	}

	if utf8.Valid(raw) {
		return raw, "utf-8", nil
	}
	enc, name, _ := charset.DetermineEncoding(raw, "text/html")
	data, err := enc.NewDecoder().Bytes(raw)
	return data, name, err
}

// declaredEncoding returns encoding from XML declaration, if any.
func declaredEncoding(raw []byte) string {
	lex := xml.NewLexer(parse.NewInput(bytes.NewReader(head(raw))))
	inDecl := false
	for {
		tt, _ := lex.Next()
		switch tt {
		case xml.StartTagPIToken:
			inDecl = strings.EqualFold(string(lex.Text()), "xml")
		case xml.AttributeToken:
			if inDecl && string(lex.Text()) == "encoding" {
				return strings.Trim(string(lex.AttrVal()), `"'`)
			}
		case xml.StartTagClosePIToken:
			if inDecl {
				return ""
			}
		case xml.StartTagToken, xml.ErrorToken:
			return ""
		}
	}
}
