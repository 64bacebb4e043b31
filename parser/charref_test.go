package parser

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityTableSorted(t *testing.T) {
	assert.True(t, sort.StringsAreSorted(entityNames))
	assert.Equal(t, len(entityNames), len(entityValues))
}

// feedAll runs the matcher over name and returns the index of the last
// name completed, or -1.
func feedAll(name string) int {
	m := newEntityMatcher()
	last := -1
	for _, r := range name {
		complete, alive := m.feed(r)
		if complete >= 0 {
			last = complete
		}
		if !alive {
			break
		}
	}
	return last
}

func TestEntityMatcherExactMatches(t *testing.T) {
	for _, name := range []string{"amp;", "amp", "lt;", "notin;", "CounterClockwiseContourIntegral;"} {
		t.Run(name, func(t *testing.T) {
			idx := feedAll(name)
			require.GreaterOrEqual(t, idx, 0)
			assert.Equal(t, name, entityNames[idx])
		})
	}
}

func TestEntityMatcherPrefixKeepsShorterMatch(t *testing.T) {
	// "noti" walks past the end of "not" without losing it.
	m := newEntityMatcher()
	var last int = -1
	for _, r := range "noti" {
		complete, alive := m.feed(r)
		if complete >= 0 {
			last = complete
		}
		require.True(t, alive)
	}
	require.GreaterOrEqual(t, last, 0)
	assert.Equal(t, "not", entityNames[last])
}

func TestEntityMatcherDeadEnds(t *testing.T) {
	for _, name := range []string{"zzzz", "q1", ";"} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, -1, feedAll(name))
		})
	}

	m := newEntityMatcher()
	_, alive := m.feed('x')
	assert.True(t, alive, "many names start with x")
	_, alive = m.feed('@')
	assert.False(t, alive)
}

func TestEntityMatcherNonASCII(t *testing.T) {
	m := newEntityMatcher()
	complete, alive := m.feed('é')
	assert.Equal(t, -1, complete)
	assert.False(t, alive)

	m = newEntityMatcher()
	complete, alive = m.feed(eofCodePoint)
	assert.Equal(t, -1, complete)
	assert.False(t, alive)
}

func TestEntityValuesDecode(t *testing.T) {
	cases := map[string]string{
		"amp;":    "&",
		"AMP":     "&",
		"lt;":     "<",
		"notin;":  "∉",
		"nbsp;":   "\u00A0",
		"Afr;":    "\U0001D504",
		"acE;":    "∾̳", // two-codepoint replacement
		"fjlig;":  "fj",
		"bnequiv;": "≡⃥",
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			idx := sort.SearchStrings(entityNames, name)
			require.Less(t, idx, len(entityNames))
			require.Equal(t, name, entityNames[idx])
			assert.Equal(t, want, entityValues[idx])
		})
	}
}

func TestNumericReferenceSubstitutionTable(t *testing.T) {
	assert.Equal(t, rune(0x20AC), numericCharacterReferenceEndStateTable[0x80])
	assert.Equal(t, rune(0x0178), numericCharacterReferenceEndStateTable[0x9F])
	_, ok := numericCharacterReferenceEndStateTable[0x81]
	assert.False(t, ok, "0x81 has no replacement")
}
