package parser

import "sort"

// entityMatcher narrows the sorted entity table one character at a time, so
// each character costs two binary searches over the remaining window rather
// than a rescan of the table. The candidate window [lo, hi) always holds
// exactly the names that begin with the characters fed so far. A matcher
// lives for one call of matchNamedCharacterReference only: after a
// chunk-boundary suspension the reference is matched again from its first
// character.
type entityMatcher struct {
	lo, hi int
	depth  int
}

func newEntityMatcher() entityMatcher {
	return entityMatcher{lo: 0, hi: len(entityNames)}
}

// feed narrows the candidate window with the next character. complete is
// the index of a name that ends exactly at this character (-1 otherwise);
// alive reports whether the window is still non-empty. The window includes
// the name just completed, so alive is true whenever complete is not -1.
func (m *entityMatcher) feed(cp codePoint) (complete int, alive bool) {
	if cp <= 0 || cp > 'z' {
		m.lo, m.hi = 0, 0
		return -1, false
	}
	c := byte(cp)

	// Names of length depth sort before any longer name sharing the
	// prefix, so both bounds can skip them while staying monotonic.
	m.lo += sort.Search(m.hi-m.lo, func(i int) bool {
		n := entityNames[m.lo+i]
		return len(n) > m.depth && n[m.depth] >= c
	})
	m.hi = m.lo + sort.Search(m.hi-m.lo, func(i int) bool {
		n := entityNames[m.lo+i]
		return n[m.depth] > c
	})
	m.depth++

	complete = -1
	if m.lo < m.hi && len(entityNames[m.lo]) == m.depth {
		complete = m.lo
	}
	return complete, m.lo < m.hi
}

// isEntityInAttributeInvalidEnd reports whether the character after a
// non-semicolon-terminated reference makes it invalid inside an attribute
// value.
func isEntityInAttributeInvalidEnd(cp codePoint) bool {
	return cp == '=' || isASCIIAlphanumeric(int(cp))
}

// matchNamedCharacterReference consumes the longest named reference
// beginning at cp. On success it returns the replacement text with the
// cursor left on the last matched character; on failure the cursor is
// restored so the consumed characters re-read with their original
// positions. Matching can be abrupted by a chunk boundary, in which case
// the caller's hibernation check restarts it from scratch.
func (p *HTMLTokenizer) matchNamedCharacterReference(cp codePoint) (string, bool) {
	m := newEntityMatcher()
	result := -1
	excess := 0
	withoutSemicolon := false

	for {
		complete, alive := m.feed(cp)
		if !alive && complete < 0 {
			break
		}
		excess++
		if complete >= 0 {
			// References that are not terminated properly inside an
			// attribute value are not parsed and raise no error.
			if cp == ';' || !p.isCharacterReferenceInAttribute() ||
				!isEntityInAttributeInvalidEnd(p.preprocessor.Peek(1)) {
				result = complete
				excess = 0
			}
			withoutSemicolon = cp != ';'
		}
		if !alive {
			break
		}
		cp = p.consume()
	}

	p.unconsume(excess)
	if result >= 0 && withoutSemicolon && !p.preprocessor.EndOfChunkHit() {
		p.err(ErrMissingSemicolonAfterCharacterReference)
	}
	// One code point past the reference was always consumed; it goes back
	// after the error above so the error lands on it.
	p.unconsume(1)

	if result < 0 {
		return "", false
	}
	return entityValues[result], true
}

// numericCharacterReferenceEndStateTable maps the windows-1252 range of
// numeric references to the characters the platform historically produced.
var numericCharacterReferenceEndStateTable = map[int]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}
