// Package models holds the client-side shapes of server responses.
package models

// User is an account as the server shows it; the password digest is never
// sent.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

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

type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectDetails is a project with resolved names.
type ProjectDetails struct {
	Project    Project  `json:"project"`
	LeaderName string   `json:"leaderName"`
	Members    []Member `json:"members"`
}

type Dashboard struct {
	Led         []Project `json:"led"`
	Memberships []Project `json:"memberships"`
}

// Session is the result of a successful login or registration.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ProjectInput is what the user typed into the project form.
type ProjectInput struct {
	Title       string
	Description string
	Price       string
	StartDate   string
	EndDate     string
	TeamMembers string
}
