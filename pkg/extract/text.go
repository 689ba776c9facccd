package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// Supported media types for uploaded resumes.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// MaxDocumentBytes is the hard ceiling for a single uploaded document.
const MaxDocumentBytes = 10 << 20 // 10 MiB

var (
	ErrEmptyDocument        = errors.New("empty document")
	ErrPayloadTooLarge      = fmt.Errorf("document exceeds %d bytes", MaxDocumentBytes)
	ErrUnsupportedMediaType = errors.New("unsupported media type: only pdf and docx are allowed")
)

// ExtractionError wraps a decoder failure on an accepted media type.
type ExtractionError struct {
	MediaType string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.MediaType, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Validate runs the input checks that must pass before any decoding is
// attempted: empty payload, size ceiling, declared media type.
func Validate(mediaType string, size int64) error {
	if size == 0 {
		return ErrEmptyDocument
	}
	if size > MaxDocumentBytes {
		return ErrPayloadTooLarge
	}
	if mediaType != MediaTypePDF && mediaType != MediaTypeDOCX {
		return ErrUnsupportedMediaType
	}
	return nil
}

// Text converts a binary document into plain UTF-8 text. The payload is
// validated first; a corrupt container yields an *ExtractionError. An
// empty-but-valid document returns the empty string.
func Text(mediaType string, data []byte) (string, error) {
	if err := Validate(mediaType, int64(len(data))); err != nil {
		return "", err
	}
	switch mediaType {
	case MediaTypePDF:
		return textFromPDF(data)
	default:
		return textFromDocx(data)
	}
}

func textFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{MediaType: MediaTypePDF, Err: err}
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", &ExtractionError{MediaType: MediaTypePDF, Err: err}
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", &ExtractionError{MediaType: MediaTypePDF, Err: err}
	}
	return normalizeWhitespace(buf.String()), nil
}

func textFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{MediaType: MediaTypeDOCX, Err: err}
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", &ExtractionError{MediaType: MediaTypeDOCX, Err: err}
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", &ExtractionError{MediaType: MediaTypeDOCX, Err: err}
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", &ExtractionError{MediaType: MediaTypeDOCX, Err: errors.New("no word/document.xml in archive")}
	}
	xml := string(docXML)
	// Convert paragraph boundaries to newlines so line-based heuristics
	// downstream still see a document structure.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

var (
	reTags     = regexp.MustCompile(`<[^>]+>`)
	reBlanks   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)

// normalizeWhitespace collapses horizontal whitespace and newline runs while
// preserving line structure.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
