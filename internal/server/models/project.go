package models

import "slices"

// Project is a tracked piece of team work.
//
// LeaderID is the creator and never changes. TeamMembers may reference user
// ids that no longer exist; they are kept as stored.
type Project struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	CompletedWork string   `json:"completedWork"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	LeaderID      string   `json:"leaderId"`
	TeamMembers   []string `json:"teamMembers"`
	Archived      bool     `json:"archived"`
}

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	p.TeamMembers = slices.Clone(p.TeamMembers)
	if p.TeamMembers == nil {
		p.TeamMembers = []string{}
	}
	return p
}

// FindProject returns the index of the project with the given id, or -1.
func FindProject(projects []Project, id string) int {
	return slices.IndexFunc(projects, func(p Project) bool { return p.ID == id })
}

// FindUser returns the index of the user with the given id, or -1.
func FindUser(users []User, id string) int {
	return slices.IndexFunc(users, func(u User) bool { return u.ID == id })
}
