package extraction

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>jane@example.com</w:t></w:r></w:p>
<w:p></w:p>
<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>EXPERIENCE</w:t></w:r></w:p>
<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Acme Corp</w:t></w:r><w:r><w:tab/><w:t>Jan 2020 - Present</w:t></w:r></w:p>
<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/></w:numPr></w:pPr><w:r><w:t xml:space="preserve">Built billing </w:t></w:r><w:r><w:rPr><w:b w:val="0"/></w:rPr><w:t>services</w:t></w:r></w:p>
</w:body>
</w:document>`

// buildDOCX creates a minimal Word archive holding the given parts
func buildDOCX(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func texts(items []types.TextItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Text)
	}
	return out
}

func TestDetect(t *testing.T) {
	docx := buildDOCX(t, map[string]string{docxMainPart: documentXML})
	plainZip := buildDOCX(t, map[string]string{"readme.txt": "hi"})

	tests := []struct {
		name     string
		filename string
		data     []byte
		want     Format
	}{
		{name: "pdf magic", filename: "resume.bin", data: []byte("%PDF-1.7\n"), want: FormatPDF},
		{name: "pdf magic beats extension", filename: "resume.txt", data: []byte("%PDF-1.4"), want: FormatPDF},
		{name: "docx archive", filename: "resume", data: docx, want: FormatDOCX},
		{name: "html doctype", filename: "resume", data: []byte("\n  <!DOCTYPE html><html></html>"), want: FormatHTML},
		{name: "html tag", filename: "resume", data: []byte("<HTML><body>x</body></HTML>"), want: FormatHTML},
		{name: "pdf extension", filename: "Resume.PDF", data: []byte("garbage"), want: FormatPDF},
		{name: "htm extension", filename: "cv.htm", data: []byte("<div>x</div>"), want: FormatHTML},
		{name: "text extension", filename: "cv.txt", data: []byte("Jane"), want: FormatText},
		{name: "no extension", filename: "cv", data: []byte("Jane"), want: FormatText},
		{name: "unknown extension", filename: "cv.rtf", data: []byte("{\\rtf1"), want: FormatText},
		{name: "foreign zip", filename: "cv.zip", data: plainZip, want: FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.filename, tt.data))
		})
	}
}

func TestForFormat_Unknown(t *testing.T) {
	_, err := ForFormat(FormatUnknown)

	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, FormatUnknown, unsupported.Format)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExtractors_EmptyInput(t *testing.T) {
	extractors := map[string]Extractor{
		"pdf":  NewPDFExtractor(),
		"docx": NewDOCXExtractor(),
		"html": NewHTMLExtractor(),
		"txt":  NewTextExtractor(),
	}

	for name, extractor := range extractors {
		t.Run(name, func(t *testing.T) {
			items, err := extractor.Extract(context.Background(), nil)
			assert.NoError(t, err)
			assert.Nil(t, items)
		})
	}
}

func TestPDFExtractor_MalformedDocument(t *testing.T) {
	_, err := NewPDFExtractor().Extract(context.Background(), []byte("%PDF-1.7 this is not a real pdf"))

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, FormatPDF, decodeErr.Format)
}

func TestPageItems_JoinsGlyphRuns(t *testing.T) {
	glyph := func(s string, x, y float64, font string) pdf.Text {
		return pdf.Text{Font: font, FontSize: 10, X: x, Y: y, W: 5, S: s}
	}
	glyphs := []pdf.Text{
		glyph("J", 50, 700, "ABCDEF+Arial-Bold"),
		glyph("o", 55, 700, "ABCDEF+Arial-Bold"),
		glyph("e", 60, 700, "ABCDEF+Arial-Bold"),
		glyph("2", 300, 700, "Arial"),
		glyph("0", 305, 700, "Arial"),
		glyph("G", 50, 680, "Arial"),
		glyph("o", 55, 680, "Arial"),
		glyph(" ", 60, 680, "Arial"),
	}

	items := pageItems(glyphs, 792, 792)

	require.Len(t, items, 3)
	assert.Equal(t, []string{"Joe", "20", "Go "}, texts(items))
	assert.Equal(t, types.TextItem{
		Text: "Joe", X: 50, Y: 792 + 792 - 700 - 10, Width: 15, Height: 10, FontName: "ABCDEF+Arial-Bold",
	}, items[0])
	assert.True(t, items[0].IsBold())
	assert.Less(t, items[0].Y, items[2].Y)
}

func TestPageItems_SkipsBlankRuns(t *testing.T) {
	glyphs := []pdf.Text{
		{Font: "Arial", FontSize: 10, X: 50, Y: 700, W: 3, S: " "},
		{Font: "Arial", FontSize: 10, X: 50, Y: 700, W: 3, S: ""},
	}
	assert.Empty(t, pageItems(glyphs, 792, 0))
}

func TestDOCXExtractor(t *testing.T) {
	data := buildDOCX(t, map[string]string{docxMainPart: documentXML})

	items, err := NewDOCXExtractor().Extract(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Jane Doe", "jane@example.com", "EXPERIENCE", "Acme Corp", "Jan 2020 - Present", "• ", "Built billing ", "services",
	}, texts(items))

	byText := map[string]types.TextItem{}
	for _, item := range items {
		byText[item.Text] = item
	}
	assert.True(t, byText["Jane Doe"].IsBold(), "title style is bold")
	assert.False(t, byText["jane@example.com"].IsBold())
	assert.True(t, byText["EXPERIENCE"].IsBold())
	assert.True(t, byText["Acme Corp"].IsBold())
	assert.False(t, byText["Jan 2020 - Present"].IsBold())
	assert.False(t, byText["services"].IsBold(), "w:val=0 turns bold off")

	assert.Equal(t, byText["Acme Corp"].Y, byText["Jan 2020 - Present"].Y)
	assert.Greater(t, byText["Jan 2020 - Present"].X-byText["Acme Corp"].Right(), syntheticCharWidth)

	emailY := byText["jane@example.com"].Y
	assert.Equal(t, syntheticLinePitch, emailY-byText["Jane Doe"].Y)
	assert.Equal(t, 2*syntheticLinePitch, byText["EXPERIENCE"].Y-emailY, "empty paragraph doubles the gap")
}

func TestDOCXExtractor_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not a zip", data: []byte("PK\x03\x04 broken")},
		{name: "missing document part", data: buildDOCX(t, map[string]string{"word/styles.xml": "<x/>"})},
		{name: "malformed xml", data: buildDOCX(t, map[string]string{docxMainPart: "<w:document><w:body><w:p>"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDOCXExtractor().Extract(context.Background(), tt.data)
			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, FormatDOCX, decodeErr.Format)
		})
	}
}

func TestHTMLExtractor(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head><title>ignored</title><style>body{}</style></head>
<body>
  <h1>Jane Doe</h1>
  <p>jane@example.com | Austin, TX</p>
  <h2>Experience</h2>
  <table><tr><td><b>Acme Corp</b></td><td>Jan 2020 - Present</td></tr></table>
  <ul>
    <li>Built   billing
      services</li>
    <li>Cut latency</li>
  </ul>
  <script>var x = 1;</script>
</body>
</html>`

	items, err := NewHTMLExtractor().Extract(context.Background(), []byte(page))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Jane Doe", "jane@example.com | Austin, TX", "Experience", "Acme Corp", "Jan 2020 - Present",
		"• Built billing services", "• Cut latency",
	}, texts(items))

	assert.True(t, items[0].IsBold())
	assert.False(t, items[1].IsBold())
	assert.True(t, items[2].IsBold())
	assert.True(t, items[3].IsBold())
	assert.False(t, items[4].IsBold())
	assert.Equal(t, items[3].Y, items[4].Y)
	assert.Equal(t, 2*syntheticLinePitch, items[2].Y-items[1].Y, "headings get a blank line before them")
}

func TestTextExtractor(t *testing.T) {
	doc := "JANE DOE\r\njane@example.com\r\n\r\n\r\nEXPERIENCE\nAcme Corp      Jan 2020 - Present\n- Built billing services\n"

	items, err := NewTextExtractor().Extract(context.Background(), []byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"JANE DOE", "jane@example.com", "EXPERIENCE", "Acme Corp", "Jan 2020 - Present", "- Built billing services",
	}, texts(items))
	assert.True(t, items[0].IsBold())
	assert.False(t, items[1].IsBold())
	assert.True(t, items[2].IsBold())
	assert.False(t, items[3].IsBold())
	assert.Equal(t, 2*syntheticLinePitch, items[2].Y-items[1].Y)
}

func TestTextExtractor_GPALineIsNotBold(t *testing.T) {
	doc := "EDUCATION\nState University\nBachelor of Science in Computer Science\nGPA: 3.9/4.0\n"

	items, err := NewTextExtractor().Extract(context.Background(), []byte(doc))
	require.NoError(t, err)

	require.Equal(t, []string{
		"EDUCATION", "State University", "Bachelor of Science in Computer Science", "GPA: 3.9/4.0",
	}, texts(items))
	assert.True(t, items[0].IsBold())
	assert.False(t, items[3].IsBold())
}

func TestIsPlainTextHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{line: "EDUCATION", want: true},
		{line: "WORK EXPERIENCE", want: true},
		{line: "Education", want: false},
		{line: "2019 - 2020", want: false},
		{line: "A VERY LONG ALL CAPS SENTENCE HERE", want: false},
		{line: "HONORS & AWARDS", want: true},
		{line: "SKILLS:", want: true},
		{line: "GPA: 3.9/4.0", want: false},
		{line: "B.S.", want: false},
		{line: "Q3-2020", want: false},
		{line: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isPlainTextHeading(tt.line))
		})
	}
}

func TestExtractItems(t *testing.T) {
	items, format, err := ExtractItems(context.Background(), "cv.txt", []byte("Jane Doe"))
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)
	assert.Equal(t, []string{"Jane Doe"}, texts(items))

	_, format, err = ExtractItems(context.Background(), "cv.zip", buildDOCX(t, map[string]string{"a.txt": "x"}))
	assert.Equal(t, FormatUnknown, format)
	assert.Error(t, err)
}
