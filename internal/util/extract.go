package util

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/go-fitz"
)

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// minTextLayer is the amount of text below which a PDF is treated as scanned.
const minTextLayer = 20

// ExtractText returns the best-effort plain text of the document at path.
func ExtractText(ctx context.Context, path, mimeType string) (string, error) {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	switch strings.TrimSpace(strings.ToLower(mimeType)) {
	case MimePDF:
		return extractPDF(ctx, path)
	case MimeDOCX:
		return extractDOCX(path)
	case MimeDOC:
		return extractDOC(path)
	case MimeText:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(b), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
}

func extractPDF(ctx context.Context, path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var buf bytes.Buffer
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			slog.Warn("pdf text layer unreadable", slog.Int("page", n+1), slog.Any("error", err))
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	if text := strings.TrimSpace(buf.String()); len(text) >= minTextLayer {
		return text, nil
	}

	slog.Info("pdf has no text layer, falling back to OCR", slog.String("path", path))
	return extractPDFOCR(ctx, doc)
}

// extractPDFOCR renders every page and runs it through tesseract.
func extractPDFOCR(ctx context.Context, doc *fitz.Document) (string, error) {
	if err := checkTesseract(ctx); err != nil {
		return "", err
	}

	var fullText bytes.Buffer
	var lastErr error
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := ocrPage(ctx, doc, n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: %w", n+1, err)
			slog.Warn("ocr page failed", slog.Any("error", lastErr))
			continue
		}
		if pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if result == "" {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text via OCR: %w", lastErr)
		}
		return "", errors.New("no text extracted from PDF")
	}
	return result, nil
}

func ocrPage(ctx context.Context, doc *fitz.Document, n int) (string, error) {
	img, err := doc.Image(n)
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	err = savePNG(tmpFile, img)
	tmpFile.Close()
	if err != nil {
		return "", err
	}

	out, err := exec.CommandContext(ctx, "tesseract", tmpPath, "stdout", "-l", "eng").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract error: %w, output: %s", err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

func checkTesseract(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "tesseract", "-v").CombinedOutput()
	if err != nil {
		return fmt.Errorf("tesseract not found or not executable: %w", err)
	}
	slog.Debug("tesseract available", slog.String("version", strings.Split(string(out), "\n")[0]))
	return nil
}

func savePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// extractDOCX reads the text runs of word/document.xml, one line per paragraph.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open document body: %w", err)
		}
		defer rc.Close()
		return docxText(rc)
	}
	return "", errors.New("DOCX has no document body")
}

func docxText(r io.Reader) (string, error) {
	var buf strings.Builder
	dec := xml.NewDecoder(r)
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode document body: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				buf.WriteString("\t")
			case "br", "cr":
				buf.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				buf.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

// extractDOC pulls printable runs out of a legacy binary Word file.
func extractDOC(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read DOC: %w", err)
	}
	return printableRuns(b, 4), nil
}

func printableRuns(b []byte, minRun int) string {
	var out, run strings.Builder
	flush := func() {
		if run.Len() >= minRun {
			out.WriteString(strings.TrimSpace(run.String()))
			out.WriteString("\n")
		}
		run.Reset()
	}
	for _, c := range b {
		switch {
		case c == '\r' || c == '\n':
			flush()
		case c >= 0x20 && c < 0x7f, c == '\t':
			run.WriteByte(c)
		default:
			flush()
		}
	}
	flush()
	return strings.TrimSpace(out.String())
}
