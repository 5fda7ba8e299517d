package distance

import (
	"strings"
)

// ── word n-grams ─────────────────────────────────────────────────────────────

// wordNGrams returns the set of windows of n consecutive whitespace-delimited
// words.  A string with fewer than n words yields an empty set.
func wordNGrams(s string, n int) map[string]struct{} {
	words := strings.Fields(s)
	if n < 1 || len(words) < n {
		return map[string]struct{}{}
	}
	set := make(map[string]struct{}, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		set[strings.Join(words[i:i+n], " ")] = struct{}{}
	}
	return set
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for k := range a {
		if _, ok := b[k]; ok {
			count++
		}
	}
	return count
}

// ngramJaccardDistance is 1 - |A∩B| / min(|A|,|B|), or 1 when either set is
// empty.
func ngramJaccardDistance(a, b string, n int) float64 {
	ga, gb := wordNGrams(a, n), wordNGrams(b, n)
	if len(ga) == 0 || len(gb) == 0 {
		return 1
	}
	smaller := len(ga)
	if len(gb) < smaller {
		smaller = len(gb)
	}
	return 1 - float64(intersectionSize(ga, gb))/float64(smaller)
}

// ngramJaccardIndex is |A∩B| / |A∪B|; NaN when both sets are empty.
func ngramJaccardIndex(a, b string, n int) float64 {
	ga, gb := wordNGrams(a, n), wordNGrams(b, n)
	inter := float64(intersectionSize(ga, gb))
	union := float64(len(ga)+len(gb)) - inter
	return inter / union
}

// ngramDiceIndex is 2|A∩B| / (|A|+|B|); NaN when both sets are empty.
func ngramDiceIndex(a, b string, n int) float64 {
	ga, gb := wordNGrams(a, n), wordNGrams(b, n)
	inter := float64(intersectionSize(ga, gb))
	return 2 * inter / float64(len(ga)+len(gb))
}

// ── character-set coefficients ───────────────────────────────────────────────

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

func sharedRunes(a, b string) float64 {
	sa, sb := runeSet(a), runeSet(b)
	count := 0
	for r := range sa {
		if _, ok := sb[r]; ok {
			count++
		}
	}
	return float64(count)
}

// tanimoto is Nc / (Na + Nb - Nc) with Nc the distinct shared characters
// and Na, Nb the string lengths.
func tanimoto(a, b string) float64 {
	na, nb := float64(len([]rune(a))), float64(len([]rune(b)))
	nc := sharedRunes(a, b)
	return nc / (na + nb - nc)
}

// overlap is Nc / min(Na, Nb).
func overlap(a, b string) float64 {
	na, nb := float64(len([]rune(a))), float64(len([]rune(b)))
	if nb < na {
		na = nb
	}
	return sharedRunes(a, b) / na
}

// ── substring matching ───────────────────────────────────────────────────────

// longestCommonRun finds the longest common contiguous run of a and b.  Ties
// resolve to the earliest start in a, then in b.
func longestCommonRun(a, b []rune) (ai, bi, length int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > length {
					length = curr[j]
					ai, bi = i-length, j-length
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return ai, bi, length
}

func longestCommonSubstring(a, b []rune) int {
	_, _, n := longestCommonRun(a, b)
	return n
}

// ratcliffObershelp is 2M / (|a|+|b|) where M counts the characters matched
// by recursively anchoring on the longest common run and matching the pieces
// on either side.
func ratcliffObershelp(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)

	type span struct{ a, b []rune }
	matched := 0
	stack := []span{{ra, rb}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j, n := longestCommonRun(s.a, s.b)
		if n == 0 {
			continue
		}
		matched += n
		stack = append(stack,
			span{s.a[:i], s.b[:j]},
			span{s.a[i+n:], s.b[j+n:]},
		)
	}
	return 2 * float64(matched) / float64(total)
}

//Personal.AI order the ending
