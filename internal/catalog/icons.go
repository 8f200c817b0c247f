package catalog

// Icon names form a closed set matching the icon components the frontend
// ships. Resolving through this table makes an unrecognized name a detectable
// condition instead of a silently missing icon.

const DefaultIcon = "Waves"

var knownIcons = map[string]struct{}{
	"AudioLines":     {},
	"Building2":      {},
	"ChartColumn":    {},
	"Handshake":      {},
	"SquareCheckBig": {},
	"Waves":          {},
}

// LookupIcon reports whether name is a known icon.
func LookupIcon(name string) (string, bool) {
	if _, ok := knownIcons[name]; ok {
		return name, true
	}
	return "", false
}

// IconOrDefault returns name when known, otherwise the default icon.
// Catalog construction already rejects unknown names, so for catalog-sourced
// values the default branch is defense in depth, not reachable behavior.
func IconOrDefault(name string) string {
	if icon, ok := LookupIcon(name); ok {
		return icon
	}
	return DefaultIcon
}
