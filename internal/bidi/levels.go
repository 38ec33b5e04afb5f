package bidi

import (
	"slices"
	"sort"

	xbidi "golang.org/x/text/unicode/bidi"
)

// maxPairingDepth bounds the bracket stack, as in rule BD16.
const maxPairingDepth = 63

// paragraph resolves embedding levels for one line of text. Explicit
// embeddings and overrides are dropped and isolates behave as neutrals, so
// every retained character forms a single isolating run sequence at the
// paragraph level.
type paragraph struct {
	runes   []rune
	initial []xbidi.Class
	types   []xbidi.Class
	levels  []uint8
	level   uint8
}

func newParagraph(runes []rune, dir Direction) *paragraph {
	p := &paragraph{
		runes:   runes,
		initial: make([]xbidi.Class, len(runes)),
		types:   make([]xbidi.Class, len(runes)),
		levels:  make([]uint8, len(runes)),
	}
	for i, r := range runes {
		c := classOf(r)
		p.initial[i] = c
		p.types[i] = c
	}

	switch dir {
	case RTL:
		p.level = 1
	case LTR:
		p.level = 0
	default:
		if firstStrong(p.initial) == RTL {
			p.level = 1
		}
	}
	return p
}

func removedByX9(c xbidi.Class) bool {
	switch c {
	case xbidi.RLE, xbidi.LRE, xbidi.RLO, xbidi.LRO, xbidi.PDF, xbidi.BN:
		return true
	}
	return false
}

func isIsolateControl(c xbidi.Class) bool {
	switch c {
	case xbidi.LRI, xbidi.RLI, xbidi.FSI, xbidi.PDI:
		return true
	}
	return false
}

func isNeutral(c xbidi.Class) bool {
	switch c {
	case xbidi.B, xbidi.S, xbidi.WS, xbidi.ON:
		return true
	}
	return false
}

// strongN maps a resolved type to the direction it contributes to neutral
// resolution: numbers count as right-to-left.
func strongN(c xbidi.Class) xbidi.Class {
	switch c {
	case xbidi.L:
		return xbidi.L
	case xbidi.R, xbidi.AL, xbidi.EN, xbidi.AN:
		return xbidi.R
	default:
		return xbidi.ON
	}
}

func (p *paragraph) embedding() xbidi.Class {
	if p.level%2 == 1 {
		return xbidi.R
	}
	return xbidi.L
}

func (p *paragraph) resolve() {
	seq := make([]int, 0, len(p.types))
	for i, c := range p.types {
		if removedByX9(c) {
			continue
		}
		if isIsolateControl(c) {
			p.types[i] = xbidi.ON
		}
		seq = append(seq, i)
	}

	e := p.embedding()
	p.resolveWeak(seq, e)
	p.resolveBrackets(seq, e)
	p.resolveNeutrals(seq, e)
	p.resolveImplicit(seq)

	prev := p.level
	for i, c := range p.initial {
		if removedByX9(c) {
			p.levels[i] = prev
			continue
		}
		prev = p.levels[i]
	}

	p.resetWhitespace()
}

// resolveWeak applies rules W1 to W7.
func (p *paragraph) resolveWeak(seq []int, sos xbidi.Class) {
	t := p.types

	prev := sos
	for _, i := range seq {
		if t[i] == xbidi.NSM {
			t[i] = prev
		} else {
			prev = t[i]
		}
	}

	last := sos
	for _, i := range seq {
		switch t[i] {
		case xbidi.L, xbidi.R, xbidi.AL:
			last = t[i]
		case xbidi.EN:
			if last == xbidi.AL {
				t[i] = xbidi.AN
			}
		}
	}

	for _, i := range seq {
		if t[i] == xbidi.AL {
			t[i] = xbidi.R
		}
	}

	for k := 1; k+1 < len(seq); k++ {
		before, cur, after := t[seq[k-1]], t[seq[k]], t[seq[k+1]]
		switch {
		case cur == xbidi.ES && before == xbidi.EN && after == xbidi.EN:
			t[seq[k]] = xbidi.EN
		case cur == xbidi.CS && before == xbidi.EN && after == xbidi.EN:
			t[seq[k]] = xbidi.EN
		case cur == xbidi.CS && before == xbidi.AN && after == xbidi.AN:
			t[seq[k]] = xbidi.AN
		}
	}

	for k := 0; k < len(seq); {
		if t[seq[k]] != xbidi.ET {
			k++
			continue
		}
		end := k
		for end < len(seq) && t[seq[end]] == xbidi.ET {
			end++
		}
		if (k > 0 && t[seq[k-1]] == xbidi.EN) || (end < len(seq) && t[seq[end]] == xbidi.EN) {
			for j := k; j < end; j++ {
				t[seq[j]] = xbidi.EN
			}
		}
		k = end
	}

	for _, i := range seq {
		switch t[i] {
		case xbidi.ES, xbidi.ET, xbidi.CS:
			t[i] = xbidi.ON
		}
	}

	last = sos
	for _, i := range seq {
		switch t[i] {
		case xbidi.L, xbidi.R:
			last = t[i]
		case xbidi.EN:
			if last == xbidi.L {
				t[i] = xbidi.L
			}
		}
	}
}

type bracketPair struct {
	open, close int
}

// resolveBrackets applies rule N0. Pairs are matched through the mirror
// table, so only brackets it knows can pair.
func (p *paragraph) resolveBrackets(seq []int, e xbidi.Class) {
	type opener struct {
		closer rune
		pos    int
	}

	var stack []opener
	var pairs []bracketPair
scan:
	for k, i := range seq {
		if p.types[i] != xbidi.ON {
			continue
		}
		r := p.runes[i]
		props, _ := xbidi.LookupRune(r)
		if !props.IsBracket() {
			continue
		}
		if props.IsOpeningBracket() {
			if len(stack) == maxPairingDepth {
				break scan
			}
			stack = append(stack, opener{closer: MirrorRune(r), pos: k})
			continue
		}
		for s := len(stack) - 1; s >= 0; s-- {
			if stack[s].closer == r {
				pairs = append(pairs, bracketPair{open: stack[s].pos, close: k})
				stack = stack[:s]
				break
			}
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].open < pairs[b].open })

	for _, pair := range pairs {
		found := xbidi.ON
		for k := pair.open + 1; k < pair.close; k++ {
			s := strongN(p.types[seq[k]])
			if s == xbidi.ON {
				continue
			}
			found = s
			if s == e {
				break
			}
		}

		switch {
		case found == e:
			p.setBracket(seq, pair, e)
		case found != xbidi.ON:
			before := e
			for k := pair.open - 1; k >= 0; k-- {
				if s := strongN(p.types[seq[k]]); s != xbidi.ON {
					before = s
					break
				}
			}
			if before == found {
				p.setBracket(seq, pair, found)
			} else {
				p.setBracket(seq, pair, e)
			}
		}
	}
}

// setBracket assigns c to both brackets of pair and to any nonspacing marks
// that originally followed them.
func (p *paragraph) setBracket(seq []int, pair bracketPair, c xbidi.Class) {
	for _, k := range []int{pair.open, pair.close} {
		p.types[seq[k]] = c
		for j := k + 1; j < len(seq) && p.initial[seq[j]] == xbidi.NSM; j++ {
			p.types[seq[j]] = c
		}
	}
}

// resolveNeutrals applies rules N1 and N2.
func (p *paragraph) resolveNeutrals(seq []int, e xbidi.Class) {
	t := p.types
	for k := 0; k < len(seq); {
		if !isNeutral(t[seq[k]]) {
			k++
			continue
		}
		end := k
		for end < len(seq) && isNeutral(t[seq[end]]) {
			end++
		}

		before, after := e, e
		if k > 0 {
			before = strongN(t[seq[k-1]])
		}
		if end < len(seq) {
			after = strongN(t[seq[end]])
		}
		c := e
		if before == after {
			c = before
		}
		for j := k; j < end; j++ {
			t[seq[j]] = c
		}
		k = end
	}
}

// resolveImplicit applies rules I1 and I2.
func (p *paragraph) resolveImplicit(seq []int) {
	for _, i := range seq {
		lvl := p.level
		if lvl%2 == 0 {
			switch p.types[i] {
			case xbidi.R:
				lvl++
			case xbidi.AN, xbidi.EN:
				lvl += 2
			}
		} else {
			switch p.types[i] {
			case xbidi.L, xbidi.EN, xbidi.AN:
				lvl++
			}
		}
		p.levels[i] = lvl
	}
}

// resetWhitespace applies rule L1: separators, and whitespace before them or
// at the end of the line, return to the paragraph level.
func (p *paragraph) resetWhitespace() {
	trailing := true
	for i := len(p.initial) - 1; i >= 0; i-- {
		c := p.initial[i]
		switch {
		case c == xbidi.B || c == xbidi.S:
			p.levels[i] = p.level
			trailing = true
		case c == xbidi.WS || isIsolateControl(c) || removedByX9(c):
			if trailing {
				p.levels[i] = p.level
			}
		default:
			trailing = false
		}
	}
}

// visualOrder applies rule L2, returning the logical index shown at every
// visual position.
func visualOrder(levels []uint8) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	if len(levels) == 0 {
		return order
	}

	lv := append([]uint8(nil), levels...)
	highest, lowest := lv[0], lv[0]
	for _, l := range lv {
		highest = max(highest, l)
		lowest = min(lowest, l)
	}
	lowestOdd := lowest | 1

	for lvl := highest; lvl >= lowestOdd; lvl-- {
		for i := 0; i < len(lv); {
			if lv[i] < lvl {
				i++
				continue
			}
			j := i
			for j < len(lv) && lv[j] >= lvl {
				j++
			}
			slices.Reverse(order[i:j])
			slices.Reverse(lv[i:j])
			i = j
		}
	}
	return order
}
