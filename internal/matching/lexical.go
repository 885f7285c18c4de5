package matching

import (
	"math"
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[a-z0-9+#]+`)

// lexicalStopwords are dropped before term-frequency vectorization.
var lexicalStopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "have": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "that": true, "the": true, "to": true, "was": true, "were": true,
	"will": true, "with": true,
}

// lexicalSimilarity computes term-frequency cosine similarity between two
// texts. Neutral 0.5 when either side has no usable terms.
func lexicalSimilarity(a, b string) float64 {
	freqA := termFrequencies(a)
	freqB := termFrequencies(b)

	if len(freqA) == 0 || len(freqB) == 0 {
		return 0.5
	}

	var dot, normA, normB float64
	for term, countA := range freqA {
		if countB, ok := freqB[term]; ok {
			dot += float64(countA) * float64(countB)
		}
		normA += float64(countA) * float64(countA)
	}
	for _, countB := range freqB {
		normB += float64(countB) * float64(countB)
	}

	if normA == 0 || normB == 0 {
		return 0.5
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func termFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, term := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if !lexicalStopwords[term] && len(term) > 1 {
			freq[term]++
		}
	}
	return freq
}

// cosineVectors computes cosine similarity between two embedding vectors,
// clamped to [0,1]. Mismatched or empty vectors score neutral 0.5.
func cosineVectors(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.5
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.5
	}

	return clamp01(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
