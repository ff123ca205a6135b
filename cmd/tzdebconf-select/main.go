// Command tzdebconf-select previews the question flow the generated
// templates produce: it walks the zoneinfo tree, asks for an area and then a
// city or region, and prints the resulting timezone identifier.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-tzdebconf/pkg/zoneinfo"
)

func main() {
	var directory string
	pflag.StringVarP(&directory, "directory", "d", ".", "compiled zoneinfo directory")
	pflag.Parse()

	walker, err := zoneinfo.NewWalker(directory, nil)
	if err != nil {
		fatal("invalid --directory", "path", directory, "error", err)
	}
	table, err := walker.WalkAll(nil)
	if err != nil {
		fatal("walk failed", "error", err)
	}

	var area string
	err = survey.AskOne(&survey.Select{
		Message:  "Geographic area:",
		Options:  table.Areas,
		PageSize: len(table.Areas),
	}, &area)
	if err != nil {
		fatal("prompt failed", "error", err)
	}

	choices := make([]string, 0, len(table.Zones[area]))
	for _, zone := range table.Zones[area] {
		choices = append(choices, strings.TrimPrefix(zone, area+"/"))
	}
	if len(choices) == 0 {
		fatal("area has no selectable zones", "area", area)
	}

	var zone string
	err = survey.AskOne(&survey.Select{
		Message:  "Time zone:",
		Options:  choices,
		PageSize: 15,
	}, &zone)
	if err != nil {
		fatal("prompt failed", "error", err)
	}

	fmt.Println(path.Join(area, zone))
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
