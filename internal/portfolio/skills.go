package portfolio

// CategoryAverage is one row of the skill distribution widget.
type CategoryAverage struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// Distribution averages skill levels per category, in the order given.
// A category with no skills reports 0.
func Distribution(skills []Skill, categories []string) []CategoryAverage {
	out := make([]CategoryAverage, 0, len(categories))
	for _, cat := range categories {
		sum, n := 0, 0
		for _, s := range skills {
			if s.Category == cat {
				sum += s.Level
				n++
			}
		}
		avg := 0.0
		if n > 0 {
			avg = float64(sum) / float64(n)
		}
		out = append(out, CategoryAverage{Category: cat, Average: avg, Count: n})
	}
	return out
}
