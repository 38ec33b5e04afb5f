// Package shaping replaces Arabic letters with their contextual presentation
// forms so terminals that do no shaping of their own display joined script.
package shaping

type joining uint8

const (
	joinNone joining = iota
	joinRight
	joinDual
	joinCausing
	joinTransparent
)

// forms holds the isolated, final, initial and medial presentation forms of a
// letter. Right-joining letters have no initial or medial form.
type forms struct {
	iso, fin, ini, med rune
}

var letters = map[rune]forms{
	0x0621: {0xFE80, 0, 0, 0},
	0x0622: {0xFE81, 0xFE82, 0, 0},
	0x0623: {0xFE83, 0xFE84, 0, 0},
	0x0624: {0xFE85, 0xFE86, 0, 0},
	0x0625: {0xFE87, 0xFE88, 0, 0},
	0x0626: {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C},
	0x0627: {0xFE8D, 0xFE8E, 0, 0},
	0x0628: {0xFE8F, 0xFE90, 0xFE91, 0xFE92},
	0x0629: {0xFE93, 0xFE94, 0, 0},
	0x062A: {0xFE95, 0xFE96, 0xFE97, 0xFE98},
	0x062B: {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C},
	0x062C: {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0},
	0x062D: {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4},
	0x062E: {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8},
	0x062F: {0xFEA9, 0xFEAA, 0, 0},
	0x0630: {0xFEAB, 0xFEAC, 0, 0},
	0x0631: {0xFEAD, 0xFEAE, 0, 0},
	0x0632: {0xFEAF, 0xFEB0, 0, 0},
	0x0633: {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4},
	0x0634: {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8},
	0x0635: {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC},
	0x0636: {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0},
	0x0637: {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4},
	0x0638: {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8},
	0x0639: {0xFEC9, 0xFECA, 0xFECB, 0xFECC},
	0x063A: {0xFECD, 0xFECE, 0xFECF, 0xFED0},
	0x0641: {0xFED1, 0xFED2, 0xFED3, 0xFED4},
	0x0642: {0xFED5, 0xFED6, 0xFED7, 0xFED8},
	0x0643: {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC},
	0x0644: {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0},
	0x0645: {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4},
	0x0646: {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8},
	0x0647: {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC},
	0x0648: {0xFEED, 0xFEEE, 0, 0},
	0x0649: {0xFEEF, 0xFEF0, 0, 0},
	0x064A: {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4},

	// Persian and Urdu letters live in Presentation Forms-A.
	0x067E: {0xFB56, 0xFB57, 0xFB58, 0xFB59},
	0x0686: {0xFB7A, 0xFB7B, 0xFB7C, 0xFB7D},
	0x0698: {0xFB8A, 0xFB8B, 0, 0},
	0x06A9: {0xFB8E, 0xFB8F, 0xFB90, 0xFB91},
	0x06AF: {0xFB92, 0xFB93, 0xFB94, 0xFB95},
	0x06CC: {0xFBFC, 0xFBFD, 0xFBFE, 0xFBFF},
}

const (
	lam     = 0x0644
	tatweel = 0x0640
)

// lamAlef maps the alef following a lam to the isolated and final ligature.
var lamAlef = map[rune][2]rune{
	0x0622: {0xFEF5, 0xFEF6},
	0x0623: {0xFEF7, 0xFEF8},
	0x0625: {0xFEF9, 0xFEFA},
	0x0627: {0xFEFB, 0xFEFC},
}

func joiningOf(r rune) joining {
	switch {
	case r >= 0x064B && r <= 0x065F, r == 0x0670:
		return joinTransparent
	case r == tatweel:
		return joinCausing
	}
	f, ok := letters[r]
	switch {
	case !ok || f.fin == 0:
		return joinNone
	case f.ini == 0:
		return joinRight
	default:
		return joinDual
	}
}

// joinsForward reports whether a character of type j connects to the
// character after it.
func (j joining) joinsForward() bool { return j == joinDual || j == joinCausing }

// joinsBackward reports whether a character of type j connects to the
// character before it.
func (j joining) joinsBackward() bool {
	return j == joinRight || j == joinDual || j == joinCausing
}

// neighbour returns the joining type of the nearest non-transparent rune from
// i stepping by step, or joinNone at the edge.
func neighbour(types []joining, i, step int) joining {
	for j := i + step; j >= 0 && j < len(types); j += step {
		if types[j] != joinTransparent {
			return types[j]
		}
	}
	return joinNone
}

// Reshape returns s with Arabic letters in their contextual forms.
func Reshape(s string) string {
	out, _ := ReshapeIndexed([]rune(s))
	return string(out)
}

// ReshapeIndexed shapes runes and reports, for every output rune, the index
// of the input rune it was produced from. A lam-alef ligature maps to the
// lam. Runes without presentation forms pass through unchanged.
func ReshapeIndexed(runes []rune) ([]rune, []int) {
	types := make([]joining, len(runes))
	for i, r := range runes {
		types[i] = joiningOf(r)
	}

	out := make([]rune, 0, len(runes))
	index := make([]int, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		f, ok := letters[r]
		if !ok {
			out = append(out, r)
			index = append(index, i)
			continue
		}

		joinPrev := types[i].joinsBackward() && neighbour(types, i, -1).joinsForward()

		if r == lam && i+1 < len(runes) {
			if lig, ok := lamAlef[runes[i+1]]; ok {
				if joinPrev {
					out = append(out, lig[1])
				} else {
					out = append(out, lig[0])
				}
				index = append(index, i)
				i++
				continue
			}
		}

		joinNext := types[i].joinsForward() && neighbour(types, i, 1).joinsBackward()

		var shaped rune
		switch {
		case joinPrev && joinNext:
			shaped = f.med
		case joinPrev:
			shaped = f.fin
		case joinNext:
			shaped = f.ini
		default:
			shaped = f.iso
		}
		out = append(out, shaped)
		index = append(index, i)
	}
	return out, index
}
