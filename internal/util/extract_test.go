package util

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Experience</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Engineer at </w:t></w:r><w:r><w:t>Acme</w:t></w:r><w:r><w:tab/><w:t>2020 - 2022</w:t></w:r></w:p>
</w:body>
</w:document>`

func writeDOCX(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestExtractText(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("docx paragraphs become lines", func(t *testing.T) {
		path := filepath.Join(dir, "resume.docx")
		writeDOCX(t, path)

		text, err := ExtractText(ctx, path, MimeDOCX)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\nExperience\nEngineer at Acme\t2020 - 2022", text)
	})

	t.Run("legacy doc keeps printable runs", func(t *testing.T) {
		path := filepath.Join(dir, "resume.doc")
		body := append([]byte{0xd0, 0xcf, 0x11, 0xe0}, []byte("Jane Doe\x00\x01ab\x02Senior Engineer 2019 - Present")...)
		require.NoError(t, os.WriteFile(path, body, 0o600))

		text, err := ExtractText(ctx, path, MimeDOC)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\nSenior Engineer 2019 - Present", text)
	})

	t.Run("plain text with charset", func(t *testing.T) {
		path := filepath.Join(dir, "resume.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

		text, err := ExtractText(ctx, path, "text/plain; charset=utf-8")
		require.NoError(t, err)
		assert.Equal(t, "hello", text)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := ExtractText(ctx, filepath.Join(dir, "x.png"), "image/png")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("docx without body", func(t *testing.T) {
		path := filepath.Join(dir, "empty.docx")
		f, err := os.Create(path)
		require.NoError(t, err)
		zw := zip.NewWriter(f)
		_, err = zw.Create("docProps/app.xml")
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		_, err = ExtractText(ctx, path, MimeDOCX)
		assert.Error(t, err)
	})

	t.Run("missing pdf", func(t *testing.T) {
		_, err := ExtractText(ctx, filepath.Join(dir, "missing.pdf"), MimePDF)
		assert.Error(t, err)
	})
}
