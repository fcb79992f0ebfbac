package suggest

const (
	// Threshold is the score a word must exceed to be considered at all.
	Threshold = 0.4
	// MaxCorrections bounds the candidate list.
	MaxCorrections = 10
)

// Corrections accumulates candidate words for one misspelled query while a
// dictionary is traversed. It is threaded through the traversal explicitly.
//
// Once the list is full, a better word replaces the first entry whose score is
// exactly the tracked minimum, and the minimum moves to the new word's score.
// When no entry matches the minimum bit for bit nothing is replaced, but the
// minimum still moves.
type Corrections struct {
	query string
	min   float64
	words []string
}

// NewCorrections starts an empty accumulator for query.
func NewCorrections(query string) *Corrections {
	return &Corrections{
		query: query,
		min:   Threshold,
		words: make([]string, 0, MaxCorrections),
	}
}

// Offer scores word against the query and updates the candidate list.
func (c *Corrections) Offer(word string) {
	score := Similarity(word, c.query)
	if score <= Threshold {
		return
	}
	if len(c.words) < MaxCorrections {
		c.words = append(c.words, word)
		return
	}
	if score <= c.min {
		return
	}
	for i, w := range c.words {
		if Similarity(w, c.query) == c.min {
			c.words[i] = word
			break
		}
	}
	c.min = score
}

// Min returns the current replacement threshold.
func (c *Corrections) Min() float64 {
	return c.min
}

// Words returns the candidates in the order they were added or replaced.
func (c *Corrections) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}
