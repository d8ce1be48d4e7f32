package models

// Catalog is the ordered, immutable question list partitioned into groups.
type Catalog struct {
	Title  string          `yaml:"title" json:"title"`
	Groups []QuestionGroup `yaml:"groups" json:"groups"`
}

// Questions returns the flattened catalog in global index order.
func (c *Catalog) Questions() []Question {
	var all []Question
	for _, g := range c.Groups {
		all = append(all, g.Questions...)
	}
	return all
}

// GroupOffsets returns the global index of the first question of each group.
func (c *Catalog) GroupOffsets() []int {
	offsets := make([]int, len(c.Groups))
	n := 0
	for i, g := range c.Groups {
		offsets[i] = n
		n += len(g.Questions)
	}
	return offsets
}

func (c *Catalog) TotalPoints() int {
	total := 0
	for _, g := range c.Groups {
		total += g.TotalPoints()
	}
	return total
}

func (c *Catalog) Len() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Questions)
	}
	return n
}

// FreeTextCount reports how many free-text questions the catalog holds.
func (c *Catalog) FreeTextCount() int {
	n := 0
	for _, g := range c.Groups {
		for _, q := range g.Questions {
			if q.Type == QuestionTypeFreeText {
				n++
			}
		}
	}
	return n
}
