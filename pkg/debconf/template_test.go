package debconf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode_FullParagraph(t *testing.T) {
	doc := Document{
		Header: []string{"Generated file.", "", "Do not edit."},
		Paragraphs: []Paragraph{
			{
				Template:         "tzdata/Areas",
				Comments:         []string{"Note to translators:"},
				Choices:          []string{"Africa", "America", "Etc"},
				TranslateChoices: true,
				Description:      "Geographic area:",
				Extended:         []string{"Pick one.", "Then continue."},
			},
		},
	}

	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := strings.Join([]string{
		"# Generated file.",
		"#",
		"# Do not edit.",
		"Template: tzdata/Areas",
		"Type: select",
		"# Note to translators:",
		"__Choices: Africa, America, Etc",
		"_Description: Geographic area:",
		" Pick one.",
		" .",
		" Then continue.",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestEncode_HeaderAttachesToFirstParagraph(t *testing.T) {
	doc := Document{
		Header:     []string{"Generated."},
		Paragraphs: []Paragraph{{Template: "tzdata/Areas", Choices: []string{"Etc"}}},
	}

	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasPrefix(buf.String(), "# Generated.\nTemplate: tzdata/Areas\n") {
		t.Fatalf("expected the header comment attached to the first paragraph, got:\n%s", buf.String())
	}
}

func TestEncode_VerbatimChoicesKey(t *testing.T) {
	doc := Document{
		Paragraphs: []Paragraph{
			{
				Template:    "tzdata/Zones/Etc",
				Choices:     []string{"GMT+0", "UTC"},
				Description: "Time zone:",
				Extended:    []string{"Pick one."},
			},
		},
	}

	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\nChoices: GMT+0, UTC\n") {
		t.Fatalf("expected a verbatim Choices line, got:\n%s", out)
	}
	if strings.Contains(out, "__Choices") {
		t.Fatalf("unexpected __Choices key:\n%s", out)
	}
}

func TestEncode_SeparatesParagraphsWithBlankLine(t *testing.T) {
	doc := Document{
		Paragraphs: []Paragraph{
			{Template: "tzdata/Areas", Choices: []string{"Etc"}},
			{Template: "tzdata/Zones/Etc", Choices: []string{"UTC"}},
		},
	}

	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := "Template: tzdata/Areas\nType: select\nChoices: Etc\n" +
		"\n" +
		"Template: tzdata/Zones/Etc\nType: select\nChoices: UTC\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestEncode_MissingTemplateNameFails(t *testing.T) {
	doc := Document{Paragraphs: []Paragraph{{Choices: []string{"UTC"}}}}

	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(doc)
	if err == nil {
		t.Fatal("expected an error for a paragraph without a template name")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no partial output, got %q", buf.String())
	}
}

func TestWrapProse(t *testing.T) {
	lines := wrapProse("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("unexpected wrapping (-want +got):\n%s", diff)
	}

	if got := wrapProse("   ", 9); got != nil {
		t.Fatalf("expected nil for blank prose, got %#v", got)
	}

	long := wrapProse("supercalifragilistic a", 5)
	want = []string{"supercalifragilistic", "a"}
	if diff := cmp.Diff(want, long); diff != "" {
		t.Fatalf("unexpected wrapping of long word (-want +got):\n%s", diff)
	}
}
