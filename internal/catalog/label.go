package catalog

import "strings"

// Parsed is the structured form of a raw gas-type label.
type Parsed struct {
	// DisplayName is the human-readable name shown in selectors and reports.
	DisplayName string

	// Components lists the gas components in label order. Duplicates are
	// preserved; the list is never empty for any input.
	Components []string
}

// labelMatcher attempts to parse one label shape. It reports false when the
// label does not have that shape so the next matcher can be tried.
type labelMatcher func(label string) (Parsed, bool)

// labelMatchers are tried in order; the first match wins. The fallback for
// labels no matcher claims is handled by ParseLabel itself.
var labelMatchers = []labelMatcher{ //nolint:gochecknoglobals // Fixed parse dispatch table.
	matchMixture,
	matchSingleGas,
}

// ParseLabel parses a raw gas-type label into its display name and component
// list. It is total: any string that matches neither known shape becomes its
// own display name and sole component.
func ParseLabel(label string) Parsed {
	for _, match := range labelMatchers {
		if parsed, ok := match(label); ok {
			return parsed
		}
	}
	return Parsed{DisplayName: label, Components: []string{label}}
}

// mixtureMarker identifies multi-component labels such as
// "4 in 1 (O2,LEL,CO,H2S)".
const mixtureMarker = " in 1"

// matchMixture parses the "<N> in 1 (<c1>,<c2>,...)" shape. The component
// list is the remainder after the marker with parentheses stripped, split on
// commas and trimmed.
func matchMixture(label string) (Parsed, bool) {
	if !strings.Contains(label, mixtureMarker) {
		return Parsed{}, false
	}

	count, rest, _ := strings.Cut(label, mixtureMarker+" ")
	rest = strings.NewReplacer("(", "", ")", "").Replace(rest)

	parts := strings.Split(rest, ",")
	components := make([]string, 0, len(parts))
	for _, part := range parts {
		components = append(components, strings.TrimSpace(part))
	}

	return Parsed{
		DisplayName: count + "-in-1 Gas Mixture",
		Components:  components,
	}, true
}

// matchSingleGas parses the "<Name> (<Symbol>)" shape, e.g. "Ammonia (NH3)".
func matchSingleGas(label string) (Parsed, bool) {
	open := strings.Index(label, "(")
	closing := strings.Index(label, ")")
	if open <= 0 || closing <= open {
		return Parsed{}, false
	}

	name := strings.TrimSpace(label[:open])
	symbol := strings.TrimSpace(label[open+1 : closing])
	if name == "" {
		return Parsed{}, false
	}

	return Parsed{
		DisplayName: name,
		Components:  []string{symbol},
	}, true
}
