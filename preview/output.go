package preview

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"uitree/config"
	"uitree/document"
	"uitree/element"
)

// encode writes element tree in requested format. When nodes is true markup
// tree the elements were built from precedes the result.
func encode(w io.Writer, doc *document.Document, el element.Element, format config.OutputFormat, nodes bool) error {
	if nodes {
		if _, err := fmt.Fprintf(w, "%s\n", doc.Root); err != nil {
			return err
		}
	}
	switch format {
	case config.OutputFormatXml:
		return element.WriteXML(w, el)
	default:
		_, err := io.WriteString(w, element.Dump(el))
		return err
	}
}

// outputName returns base file name of the rendered document. Names are
// transliterated, when nothing is left, original name is cleaned instead.
func outputName(doc *document.Document, format config.OutputFormat) string {
	base := strings.TrimSuffix(doc.Name(), filepath.Ext(doc.Name()))
	name := slug.Make(base)
	if name == "" {
		name = config.CleanFileName(base)
	}
	return name + format.Ext()
}

// outputPath decides where result goes. Empty destination means STDOUT and
// empty path is returned. Existing directory, path ending with separator or
// several sources make destination a directory.
func outputPath(doc *document.Document, dst string, format config.OutputFormat, many bool) (string, error) {
	if dst == "" {
		return "", nil
	}
	isDir := many || strings.HasSuffix(dst, string(filepath.Separator)) || strings.HasSuffix(dst, "/")
	abs, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
		isDir = true
	}
	if isDir {
		return filepath.Join(abs, outputName(doc, format)), nil
	}
	return abs, nil
}

// prepareOutput checks existing file and creates directories for a new one.
func prepareOutput(path string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", path)
		}
		log.Warn("Overwriting existing file", zap.String("file", path))
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

// writeOutput puts data into file at path or to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := io.Copy(stdout, bytes.NewReader(data))
		return err
	}
	return os.WriteFile(path, data, 0644)
}
