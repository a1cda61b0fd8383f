package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ProjectForm is the typed result of coercing raw project input.
type ProjectForm struct {
	Title         string
	Description   string
	Price         float64
	CompletedWork string
	StartDate     string
	EndDate       string
	TeamMembers   []string
}

// ParseProjectForm coerces untyped input (decoded JSON, form values) into a
// ProjectForm. It never fails: bad numbers become 0 and bad lists become
// empty.
func ParseProjectForm(raw map[string]any) ProjectForm {
	return ProjectForm{
		Title:         strings.TrimSpace(Text(raw["title"])),
		Description:   Text(raw["description"]),
		Price:         Price(raw["price"]),
		CompletedWork: Text(raw["completedWork"]),
		StartDate:     strings.TrimSpace(Text(raw["startDate"])),
		EndDate:       strings.TrimSpace(Text(raw["endDate"])),
		TeamMembers:   MemberList(raw["teamMembers"]),
	}
}

// NewProject builds a record from the form with a fresh id and leaderID as
// leader.
func (f ProjectForm) NewProject(leaderID string) Project {
	p := Project{
		ID:       NewID(),
		LeaderID: leaderID,
	}
	f.ApplyCore(&p)
	p.CompletedWork = f.CompletedWork
	return p
}

// ApplyCore copies the leader-editable fields onto p. ID, LeaderID,
// CompletedWork and Archived are left alone.
func (f ProjectForm) ApplyCore(p *Project) {
	p.Title = f.Title
	p.Description = f.Description
	p.Price = f.Price
	p.StartDate = f.StartDate
	p.EndDate = f.EndDate
	p.TeamMembers = append([]string{}, f.TeamMembers...)
}

// Text renders a scalar as a string; nil becomes "".
func Text(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []string:
		if len(value) > 0 {
			return value[0]
		}
		return ""
	case []any:
		if len(value) > 0 {
			return Text(value[0])
		}
		return ""
	default:
		return fmt.Sprint(value)
	}
}

// Price parses a price. Absent, unparsable, negative, NaN and infinite
// inputs all yield 0.
func Price(v any) float64 {
	var f float64
	switch value := v.(type) {
	case float64:
		f = value
	case float32:
		f = float64(value)
	case int:
		f = float64(value)
	case int64:
		f = float64(value)
	case int32:
		f = float64(value)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case []string, []any:
		return Price(Text(value))
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// MemberList normalises a team member field. A single string is split on
// newlines and commas; lists are taken element-wise. Entries are trimmed,
// empties dropped and duplicates collapsed keeping the first occurrence.
func MemberList(v any) []string {
	var parts []string
	switch value := v.(type) {
	case nil:
	case string:
		parts = strings.FieldsFunc(value, func(r rune) bool { return r == '\n' || r == '\r' || r == ',' })
	case []string:
		parts = value
	case []any:
		for _, item := range value {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
	}

	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
