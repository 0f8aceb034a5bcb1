// Copyright © 2025 The whyerr authors

// Package similar proposes near-miss name corrections for "did you mean"
// suggestions. FindSimilar is a pure function: identical inputs always yield
// identical, identically-ordered output.
package similar

import (
	"sort"
	"strings"
)

// maxCandidateLength bounds the edit-distance computation. Names longer
// than this are never worth suggesting to a beginner anyway.
const maxCandidateLength = 64

// FindSimilar returns the candidates judged close enough to target to be
// plausible typos, ordered closest first. The target itself is never
// included, even when present among the candidates. An exact match ignoring
// case ranks above everything else; after that candidates are ordered by
// edit distance, with a tie broken by preferring matching case, then
// lexicographically.
func FindSimilar(target string, candidates []string) []string {
	if target == "" {
		return nil
	}
	type scored struct {
		name string
		cost int
	}
	var found []scored
	seen := make(map[string]bool)
	lowTarget := strings.ToLower(target)
	for _, c := range candidates {
		if c == target || c == "" || seen[c] {
			continue
		}
		if len(c) > maxCandidateLength || len(target) > maxCandidateLength {
			continue
		}
		cost, ok := closeness(target, lowTarget, c)
		if !ok {
			continue
		}
		seen[c] = true
		found = append(found, scored{name: c, cost: cost})
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].cost != found[j].cost {
			return found[i].cost < found[j].cost
		}
		return found[i].name < found[j].name
	})
	names := make([]string, 0, len(found))
	for _, f := range found {
		names = append(names, f.name)
	}
	return names
}

// closeness scores how plausible a typo candidate is. Lower is closer.
// The second result reports whether the candidate qualifies at all.
// Distances are doubled and a one-point penalty is added when the match
// only holds ignoring case, so that an exact-case match always outranks a
// case-insensitive one at the same distance.
func closeness(target, lowTarget, candidate string) (int, bool) {
	lowCandidate := strings.ToLower(candidate)
	d := editDistance(lowTarget, lowCandidate)
	casePenalty := 0
	if editDistance(target, candidate) > d {
		casePenalty = 1
	}
	if lowCandidate == lowTarget {
		// Same name, wrong case.
		return casePenalty, true
	}
	// One-character slips are always plausible; allow a second slip only
	// for names long enough that two typos remain recognisable.
	cutoff := 1
	if len(lowTarget) >= 5 {
		cutoff = 2
	}
	if d <= cutoff {
		return 2*d + casePenalty, true
	}
	// A strict prefix relationship catches truncated or over-completed
	// names (e.g. "food" vs "foo_bar" against "foo").
	if strings.HasPrefix(lowCandidate, lowTarget) || strings.HasPrefix(lowTarget, lowCandidate) {
		return 2*(cutoff+1) + casePenalty, true
	}
	return 0, false
}

// editDistance computes the Levenshtein distance between a and b using a
// single-row dynamic program.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min3(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}
	return row[len(b)]
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
