// Package zoneinfo walks a directory of compiled timezone entries (the
// output of the zic compiler) and collects the identifiers a user may pick
// from. Regular files are canonical zones and always selectable; symlinks are
// aliases left behind by upstream renames and are classified against two
// curated tables: obsolete aliases are hidden, recognized alternate names
// stay selectable, anything else aborts the run so a new upstream rename is
// never miscategorized silently.
package zoneinfo
