package zoneinfo

// areas lists the geographic areas offered by the installer. The order is
// the presentation order of the area question and is deliberate; do not sort.
var areas = []string{
	"Africa",
	"America",
	"Antarctica",
	"Arctic",
	"Asia",
	"Atlantic",
	"Australia",
	"Europe",
	"Indian",
	"Pacific",
	"Etc",
}

// Areas returns a copy of the fixed area list in presentation order.
func Areas() []string {
	return append([]string{}, areas...)
}
