package importer

// scanTags counts tag markers in a raw HTML fragment: "<" followed by an
// ASCII letter opens a tag, "/>" or "</" closes one. Each pass advances two
// bytes past a match so overlapping candidates count once. The two counts
// are taken independently over the whole fragment; only their difference
// feeds the accumulation depth.
func scanTags(s string) (opens, closes int) {
	for i := 0; i+1 < len(s); {
		if s[i] == '<' && isASCIILetter(s[i+1]) {
			opens++
			i += 2
			continue
		}
		i++
	}
	for i := 0; i+1 < len(s); {
		if (s[i] == '/' && s[i+1] == '>') || (s[i] == '<' && s[i+1] == '/') {
			closes++
			i += 2
			continue
		}
		i++
	}
	return opens, closes
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
