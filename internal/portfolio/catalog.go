package portfolio

import (
	"errors"
	"fmt"
)

var ErrProjectNotFound = errors.New("project not found")

// Catalog is the immutable set of projects and skills rendered by the dashboard.
type Catalog struct {
	Profile    Profile
	Projects   []Project
	Skills     []Skill
	Categories []string
}

// DefaultCatalog returns the built-in content.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Profile:    DefaultProfile,
		Projects:   Projects,
		Skills:     Skills,
		Categories: SkillCategories,
	}
}

// Project looks a project up by id.
func (c *Catalog) Project(id int) (*Project, error) {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
}

// Recent returns the first n projects for the overview preview.
func (c *Catalog) Recent(n int) []Project {
	if n > len(c.Projects) {
		n = len(c.Projects)
	}
	return c.Projects[:n]
}
