// Package portfolio holds the fixed content of the dashboard: profile, projects and skills.
package portfolio

// Status of a project as shown on its card badge.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusPlanned   Status = "Planned"
)

// Badge returns the badge color family for the status; anything that is not
// Active or Completed is shown like Planned.
func (s Status) Badge() string {
	switch s {
	case StatusActive:
		return "green"
	case StatusCompleted:
		return "blue"
	default:
		return "yellow"
	}
}

type Project struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Status      Status   `json:"status"`
	Progress    int      `json:"progress"`
	Tech        []string `json:"tech"`
	Stars       int      `json:"stars"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Challenge   string   `json:"challenge"`
	Solution    string   `json:"solution"`
	Impact      string   `json:"impact"`
	GitHub      string   `json:"github,omitempty"`
	Demo        string   `json:"demo,omitempty"`
}

// PreviewTech returns at most the first three technologies, as shown on a card.
func (p Project) PreviewTech() []string {
	if len(p.Tech) > 3 {
		return p.Tech[:3]
	}
	return p.Tech
}

type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type Link struct {
	Label string
	URL   string
}

type Profile struct {
	Name         string
	Title        string
	Location     string
	Image        string
	About        []string
	Tags         []string
	CurrentFocus []string
	QuickFacts   []string
	Links        []Link
	Milestones   []string
}
