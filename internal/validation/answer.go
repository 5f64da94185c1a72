package validation

import (
	"strings"
	"unicode"
)

var articles = []string{"the ", "a ", "an "}

// NormalizeAnswer lower-cases an answer, drops a leading article and
// punctuation, and collapses whitespace.
func NormalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))
	for _, article := range articles {
		if strings.HasPrefix(answer, article) {
			answer = answer[len(article):]
			break
		}
	}

	var b strings.Builder
	for _, r := range answer {
		if !unicode.IsPunct(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// IsSimilarAnswer reports whether a submitted answer is close enough to the
// expected one: equal after normalization, one containing the other as whole
// words, or within an edit distance of 20% of the longer answer.
func IsSimilarAnswer(submitted, expected string) bool {
	s := NormalizeAnswer(submitted)
	e := NormalizeAnswer(expected)

	if s == e {
		return true
	}
	if s == "" || e == "" {
		return false
	}
	if containsWords(s, e) || containsWords(e, s) {
		return true
	}

	a, b := []rune(s), []rune(e)
	longest := max(len(a), len(b))
	return float64(editDistance(a, b))/float64(longest) < 0.2
}

// containsWords reports whether the words of part appear consecutively in
// whole. Both must already be normalized.
func containsWords(whole, part string) bool {
	return strings.Contains(" "+whole+" ", " "+part+" ")
}

// editDistance is the Levenshtein distance between a and b
func editDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
