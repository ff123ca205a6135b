// Package debconf writes the templates file format consumed by Debian's
// configuration system: paragraphs of "Key: value" fields separated by blank
// lines, with extended description lines indented by a single space and
// comment lines prefixed with "#".
package debconf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// defaultWrap is the column extended description prose wraps at.
const defaultWrap = 72

// Paragraph is one template definition.
type Paragraph struct {
	// Template is the fully qualified template name ("tzdata/Areas").
	Template string

	// Type is the debconf data type. Empty defaults to "select".
	Type string

	// Comments are emitted as "# " lines between the Type field and the
	// choices field; translator notes live here.
	Comments []string

	// Choices holds the selectable values, joined with ", " on one line.
	Choices []string

	// TranslateChoices selects the __Choices key (values marked for
	// translation) over the verbatim Choices key.
	TranslateChoices bool

	// Description is the short prompt ("Geographic area:").
	Description string

	// Extended holds the long description as paragraphs of prose. Each
	// entry is word-wrapped on output and separated from the next by a
	// lone " ." line.
	Extended []string
}

// Document is an ordered sequence of paragraphs. Header comment lines are
// emitted directly above the first paragraph, attached to it with no blank
// line in between.
type Document struct {
	Header     []string
	Paragraphs []Paragraph
}

// Encoder writes documents in the templates wire format.
type Encoder struct {
	w    io.Writer
	wrap int
}

// NewEncoder returns an encoder writing to w, wrapping extended description
// prose at 72 columns.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, wrap: defaultWrap}
}

// Encode renders the whole document and writes it in one call, so nothing
// reaches w when any paragraph is invalid.
func (e *Encoder) Encode(doc Document) error {
	var buf bytes.Buffer

	for _, line := range doc.Header {
		writeComment(&buf, line)
	}

	for i, para := range doc.Paragraphs {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := writeParagraph(&buf, para, e.wrap); err != nil {
			return err
		}
	}

	_, err := e.w.Write(buf.Bytes())
	return err
}

func writeParagraph(buf *bytes.Buffer, para Paragraph, wrap int) error {
	if para.Template == "" {
		return fmt.Errorf("debconf: paragraph missing template name")
	}

	fmt.Fprintf(buf, "Template: %s\n", para.Template)

	typ := para.Type
	if typ == "" {
		typ = "select"
	}
	fmt.Fprintf(buf, "Type: %s\n", typ)

	for _, line := range para.Comments {
		writeComment(buf, line)
	}

	if len(para.Choices) > 0 {
		key := "Choices"
		if para.TranslateChoices {
			key = "__Choices"
		}
		fmt.Fprintf(buf, "%s: %s\n", key, strings.Join(para.Choices, ", "))
	}

	if para.Description != "" {
		fmt.Fprintf(buf, "_Description: %s\n", para.Description)
		for i, prose := range para.Extended {
			if i > 0 {
				buf.WriteString(" .\n")
			}
			for _, line := range wrapProse(prose, wrap) {
				buf.WriteByte(' ')
				buf.WriteString(line)
				buf.WriteByte('\n')
			}
		}
	}

	return nil
}

func writeComment(buf *bytes.Buffer, line string) {
	if line == "" {
		buf.WriteString("#\n")
		return
	}
	buf.WriteString("# ")
	buf.WriteString(line)
	buf.WriteByte('\n')
}

// wrapProse greedily wraps prose into lines of at most width characters. A
// single word longer than width stays on its own line.
func wrapProse(prose string, width int) []string {
	words := strings.Fields(prose)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
