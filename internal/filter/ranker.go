package filter

// Unranked is returned by Ranker.Rank for a level that is not in the list.
const Unranked = -1

// Ranker resolves education levels to their position in an ordered list,
// lowest first. Matching is exact and case-sensitive.
type Ranker struct {
	levels []string
	index  map[string]int
}

func NewRanker(levels []string) *Ranker {
	r := &Ranker{
		levels: append([]string(nil), levels...),
		index:  make(map[string]int, len(levels)),
	}
	for i, level := range r.levels {
		if _, dup := r.index[level]; !dup {
			r.index[level] = i
		}
	}
	return r
}

func (r *Ranker) Rank(level string) int {
	if rank, ok := r.index[level]; ok {
		return rank
	}
	return Unranked
}

func (r *Ranker) Levels() []string {
	return append([]string(nil), r.levels...)
}

// Meets reports whether level ranks at or above minLevel. An unranked value on
// either side never meets the threshold.
func (r *Ranker) Meets(level, minLevel string) bool {
	minRank := r.Rank(minLevel)
	rank := r.Rank(level)
	return minRank != Unranked && rank != Unranked && rank >= minRank
}
