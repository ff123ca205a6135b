package generator

import (
	"bytes"
	"context"
	"strings"

	"github.com/goliatone/go-tzdebconf/pkg/debconf"
	"github.com/goliatone/go-tzdebconf/pkg/zoneinfo"
)

const (
	templateAreas       = "tzdata/Areas"
	templateZonesPrefix = "tzdata/Zones/"

	// areaEtc gets a verbatim Choices key: its entries are POSIX offset
	// names ("GMT+5") that must never be translated.
	areaEtc = "Etc"
)

// DebconfRenderer renders the zone table as the tzdata debconf templates
// document: one area-selection paragraph followed by one zone-selection
// paragraph per area, in the fixed area order.
type DebconfRenderer struct{}

// Name identifies the renderer in the registry.
func (DebconfRenderer) Name() string { return "debconf" }

// Render builds and encodes the full templates document.
func (DebconfRenderer) Render(ctx context.Context, table *zoneinfo.Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := BuildDocument(table)

	var buf bytes.Buffer
	if err := debconf.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildDocument assembles the templates document without encoding it, for
// callers that want to inspect or post-process paragraphs before writing.
func BuildDocument(table *zoneinfo.Table) debconf.Document {
	doc := debconf.Document{
		Header: []string{
			"This file is generated from the compiled zoneinfo tree.",
			"Do not edit it by hand; rerun the generator after a tzdata update.",
		},
	}
	doc.Paragraphs = append(doc.Paragraphs, areasParagraph(table.Areas))
	for _, area := range table.Areas {
		doc.Paragraphs = append(doc.Paragraphs, zonesParagraph(area, table.Zones[area]))
	}
	return doc
}

func areasParagraph(areas []string) debconf.Paragraph {
	return debconf.Paragraph{
		Template: templateAreas,
		Type:     "select",
		Comments: []string{
			"Note to translators:",
			`- "Etc" will present users with a list of "GMT+xx" or "GMT-xx" timezones.`,
		},
		Choices:          append([]string{}, areas...),
		TranslateChoices: true,
		Description:      "Geographic area:",
		Extended: []string{
			"Please select the geographic area in which you live. Subsequent configuration questions will narrow this down by presenting a list of cities, representing the time zones in which they are located.",
		},
	}
}

func zonesParagraph(area string, zones []string) debconf.Paragraph {
	choices := make([]string, 0, len(zones))
	for _, zone := range zones {
		choices = append(choices, strings.TrimPrefix(zone, area+"/"))
	}

	para := debconf.Paragraph{
		Template:         templateZonesPrefix + area,
		Type:             "select",
		Choices:          choices,
		TranslateChoices: area != areaEtc,
		Description:      "Time zone:",
		Extended: []string{
			"Please select the time zone corresponding to your location.",
		},
	}

	if area == areaEtc {
		para.Extended = append(para.Extended,
			"The GMT offsets listed here follow the POSIX convention: zones west of Greenwich carry a positive sign and zones east of Greenwich a negative sign.")
	} else {
		para.Comments = []string{
			"Translators: do not translate underscores. You can use spaces instead.",
		}
	}

	return para
}
