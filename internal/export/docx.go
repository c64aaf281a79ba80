package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// MergeFile merges placeholder values into a template file. A .docx
// template is treated as a zip whose XML parts are substituted; any
// other file is treated as plain text.
func MergeFile(templatePath, outPath string, values map[string]string) error {
	if strings.HasSuffix(strings.ToLower(templatePath), ".docx") {
		return mergeDocx(templatePath, outPath, values)
	}
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	merged := Substitute(string(data), values)
	if err := os.WriteFile(outPath, []byte(merged), 0644); err != nil {
		return fmt.Errorf("writing merged document: %w", err)
	}
	return nil
}

// mergeDocx rewrites a docx archive, substituting tokens inside every
// XML part and copying all other entries byte for byte.
func mergeDocx(templatePath, outPath string, values map[string]string) error {
	r, err := zip.OpenReader(templatePath)
	if err != nil {
		return fmt.Errorf("opening docx template: %w", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, f := range r.File {
		if err := mergeZipEntry(w, f, values); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing docx: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing merged docx: %w", err)
	}
	return nil
}

func mergeZipEntry(w *zip.Writer, f *zip.File, values map[string]string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening docx entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := w.Create(f.Name)
	if err != nil {
		return fmt.Errorf("creating docx entry %s: %w", f.Name, err)
	}

	if strings.HasSuffix(f.Name, ".xml") {
		data, err := io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("reading docx entry %s: %w", f.Name, err)
		}
		merged := Substitute(string(data), xmlEscapeValues(values))
		if _, err := out.Write([]byte(merged)); err != nil {
			return fmt.Errorf("writing docx entry %s: %w", f.Name, err)
		}
		return nil
	}

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("copying docx entry %s: %w", f.Name, err)
	}
	return nil
}

// xmlEscapeValues escapes substitution values for embedding in XML
// text nodes. Newlines become Word paragraph-safe line breaks only in
// the sense of a literal break element; tabs separate table cells in
// the source text and are kept as-is for tab stops.
func xmlEscapeValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		e := strings.ReplaceAll(v, "&", "&amp;")
		e = strings.ReplaceAll(e, "<", "&lt;")
		e = strings.ReplaceAll(e, ">", "&gt;")
		e = strings.ReplaceAll(e, "\n", `</w:t><w:br/><w:t>`)
		e = strings.ReplaceAll(e, "\t", `</w:t><w:tab/><w:t>`)
		out[k] = e
	}
	return out
}
