package zoneinfo

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Classification is the policy verdict for a symlinked zoneinfo entry.
type Classification int

const (
	// ClassUnknown marks a symlink present in neither curated table.
	ClassUnknown Classification = iota
	// ClassObsolete marks a legacy alias that is hidden from users.
	ClassObsolete
	// ClassAlternate marks a recognized alternate name that stays selectable.
	ClassAlternate
)

// Policy decides which symlinked entries are user-selectable. The curated
// tables below track upstream renames and must be updated by hand whenever a
// tzdata release introduces a link that is in neither table.
type Policy struct {
	obsolete  map[string]struct{}
	alternate map[string]struct{}
}

// NewPolicy builds a policy from explicit obsolete and alternate alias lists.
func NewPolicy(obsolete, alternate []string) *Policy {
	return &Policy{
		obsolete:  toSet(obsolete),
		alternate: toSet(alternate),
	}
}

// DefaultPolicy returns the policy built from the curated tables shipped with
// this package.
func DefaultPolicy() *Policy {
	return NewPolicy(obsoleteAliases, alternateAliases)
}

// Classify returns the verdict for the entry at the given relative path
// ("America/Buenos_Aires").
func (p *Policy) Classify(rel string) Classification {
	if _, ok := p.obsolete[rel]; ok {
		return ClassObsolete
	}
	if _, ok := p.alternate[rel]; ok {
		return ClassAlternate
	}
	return ClassUnknown
}

// Validate reports an error when any path appears in both tables. The tables
// must stay disjoint or a symlink's verdict would depend on lookup order.
func (p *Policy) Validate() error {
	var both []string
	for rel := range p.obsolete {
		if _, ok := p.alternate[rel]; ok {
			both = append(both, rel)
		}
	}
	if len(both) == 0 {
		return nil
	}
	sort.Strings(both)
	return fmt.Errorf("zoneinfo: aliases listed as both obsolete and alternate: %s", strings.Join(both, ", "))
}

// Overlay is the YAML document accepted by LoadOverlay. It extends the
// curated tables without a rebuild, for example while staging a new upstream
// release.
type Overlay struct {
	Obsolete  []string `yaml:"obsolete"`
	Alternate []string `yaml:"alternate"`
}

// LoadOverlay decodes a YAML overlay and returns a new policy combining p
// with the overlay entries. The merged policy is validated before it is
// returned, so an overlay cannot introduce a conflict.
func (p *Policy) LoadOverlay(r io.Reader) (*Policy, error) {
	var overlay Overlay
	if err := yaml.NewDecoder(r).Decode(&overlay); err != nil {
		return nil, fmt.Errorf("zoneinfo: decode policy overlay: %w", err)
	}

	merged := &Policy{
		obsolete:  cloneSet(p.obsolete),
		alternate: cloneSet(p.alternate),
	}
	for _, rel := range overlay.Obsolete {
		merged.obsolete[strings.TrimSpace(rel)] = struct{}{}
	}
	for _, rel := range overlay.Alternate {
		merged.alternate[strings.TrimSpace(rel)] = struct{}{}
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, item := range list {
		set[item] = struct{}{}
	}
	return set
}

func cloneSet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for key := range in {
		out[key] = struct{}{}
	}
	return out
}

// obsoleteAliases lists links kept by upstream purely for backward
// compatibility after a rename or merge. Offering both spellings would be
// noise, so these stay hidden.
var obsoleteAliases = []string{
	"Africa/Asmera",
	"Africa/Timbuktu",
	"America/Argentina/ComodRivadavia",
	"America/Atka",
	"America/Buenos_Aires",
	"America/Catamarca",
	"America/Coral_Harbour",
	"America/Cordoba",
	"America/Ensenada",
	"America/Fort_Wayne",
	"America/Godthab",
	"America/Indianapolis",
	"America/Jujuy",
	"America/Knox_IN",
	"America/Louisville",
	"America/Mendoza",
	"America/Montreal",
	"America/Nipigon",
	"America/Pangnirtung",
	"America/Porto_Acre",
	"America/Rainy_River",
	"America/Rosario",
	"America/Santa_Isabel",
	"America/Shiprock",
	"America/Thunder_Bay",
	"America/Virgin",
	"America/Yellowknife",
	"Antarctica/South_Pole",
	"Asia/Ashkhabad",
	"Asia/Calcutta",
	"Asia/Choibalsan",
	"Asia/Chongqing",
	"Asia/Chungking",
	"Asia/Dacca",
	"Asia/Harbin",
	"Asia/Istanbul",
	"Asia/Kashgar",
	"Asia/Katmandu",
	"Asia/Macao",
	"Asia/Rangoon",
	"Asia/Saigon",
	"Asia/Tel_Aviv",
	"Asia/Thimbu",
	"Asia/Ujung_Pandang",
	"Asia/Ulan_Bator",
	"Atlantic/Faeroe",
	"Atlantic/Jan_Mayen",
	"Australia/ACT",
	"Australia/Canberra",
	"Australia/LHI",
	"Australia/NSW",
	"Australia/North",
	"Australia/Queensland",
	"Australia/South",
	"Australia/Tasmania",
	"Australia/Victoria",
	"Australia/West",
	"Australia/Yancowinna",
	"Europe/Belfast",
	"Europe/Kiev",
	"Europe/Nicosia",
	"Europe/Tiraspol",
	"Europe/Uzhgorod",
	"Europe/Zaporozhye",
	"Pacific/Enderbury",
	"Pacific/Johnston",
	"Pacific/Ponape",
	"Pacific/Samoa",
	"Pacific/Truk",
	"Pacific/Yap",
}

// alternateAliases lists links that remain meaningful place names in their
// own right (distinct countries or territories sharing one canonical zone)
// and stay selectable.
var alternateAliases = []string{
	"America/Kralendijk",
	"America/Lower_Princes",
	"America/Marigot",
	"America/St_Barthelemy",
	"Antarctica/McMurdo",
	"Arctic/Longyearbyen",
	"Asia/Aden",
	"Asia/Bahrain",
	"Asia/Kuwait",
	"Asia/Muscat",
	"Etc/GMT+0",
	"Etc/GMT-0",
	"Etc/GMT0",
	"Etc/Greenwich",
	"Etc/UCT",
	"Etc/Universal",
	"Etc/Zulu",
	"Europe/Bratislava",
	"Europe/Busingen",
	"Europe/Guernsey",
	"Europe/Isle_of_Man",
	"Europe/Jersey",
	"Europe/Ljubljana",
	"Europe/Mariehamn",
	"Europe/Podgorica",
	"Europe/San_Marino",
	"Europe/Sarajevo",
	"Europe/Skopje",
	"Europe/Vatican",
	"Europe/Zagreb",
	"Pacific/Saipan",
}
