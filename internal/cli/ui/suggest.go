// Package ui holds small terminal output helpers shared by the CLI commands.
package ui

import (
	"sort"
	"strings"
)

const (
	// maxSuggestDistance is the largest edit distance still offered as a
	// suggestion
	maxSuggestDistance = 3
	// maxSuggestions caps how many alternatives are offered
	maxSuggestions = 3
)

// Suggest returns the candidates closest to target by edit distance, best
// first. Used to answer "pattern not found" with a did-you-mean line.
//
// Example:
//
//	Suggest("tbas", []string{"tabs", "card", "dialog"}) // Returns: ["tabs"]
func Suggest(target string, candidates []string) []string {
	type scored struct {
		value    string
		distance int
	}

	var matches []scored
	for _, candidate := range candidates {
		dist := levenshtein(strings.ToLower(target), strings.ToLower(candidate))
		if dist <= maxSuggestDistance {
			matches = append(matches, scored{candidate, dist})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].value < matches[j].value
	})

	result := make([]string, 0, maxSuggestions)
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		result = append(result, matches[i].value)
	}
	return result
}

// DidYouMean formats suggestions as a hint line, or returns "" when there is
// nothing to offer.
func DidYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return "did you mean: " + strings.Join(suggestions, ", ") + "?"
}

// levenshtein is the minimum number of single-character edits (insertions,
// deletions, or substitutions) required to change one string into the other.
func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := 0; j <= len(s2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
