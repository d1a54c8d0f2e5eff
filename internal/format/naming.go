package format

import "unicode"

// DefaultTypeName names generated types whose schema has no usable title.
const DefaultTypeName = "GeneratedType"

// PascalCase derives a type identifier from a free-form title: every run of
// characters outside [A-Za-z0-9] is dropped and the character following it is
// upper-cased, then the first character is upper-cased. A title that leaves
// nothing behind falls back to DefaultTypeName; a leading digit gets a "_"
// prefix so the result is a valid identifier.
func PascalCase(title string) string {
	rs := []rune(title)
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); {
		if isAlnum(rs[i]) {
			out = append(out, rs[i])
			i++
			continue
		}
		j := i
		for j < len(rs) && !isAlnum(rs[j]) {
			j++
		}
		if j < len(rs) {
			out = append(out, unicode.ToUpper(rs[j]))
			j++
		}
		i = j
	}
	if len(out) == 0 {
		return DefaultTypeName
	}
	out[0] = unicode.ToUpper(out[0])
	if out[0] >= '0' && out[0] <= '9' {
		return "_" + string(out)
	}
	return string(out)
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
