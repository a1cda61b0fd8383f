// Package access holds the role predicates over projects and the single
// policy table that maps every project operation to the predicate it
// requires.
package access

import (
	"slices"

	"github.com/dmitrijs2005/teamboard/internal/common"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
)

// IsLeader reports whether userID leads p.
func IsLeader(p models.Project, userID string) bool {
	return userID != "" && p.LeaderID == userID
}

// IsMember reports whether userID is listed on p's team.
func IsMember(p models.Project, userID string) bool {
	return userID != "" && slices.Contains(p.TeamMembers, userID)
}

// HasAccess reports whether userID leads or belongs to p.
func HasAccess(p models.Project, userID string) bool {
	return IsLeader(p, userID) || IsMember(p, userID)
}

// Action is a project operation subject to authorization.
type Action string

const (
	ActionView            Action = "view"
	ActionListLed         Action = "list_led"
	ActionListMemberships Action = "list_memberships"
	ActionCreate          Action = "create"
	ActionEdit            Action = "edit"
	ActionArchive         Action = "archive"
	ActionDelete          Action = "delete"
	ActionUpdateWork      Action = "update_work"
)

// Predicate decides whether userID may perform an action on p.
type Predicate func(p models.Project, userID string) bool

type rule struct {
	allow  Predicate
	reason string
}

func anyone(models.Project, string) bool { return true }

func memberNotLeader(p models.Project, userID string) bool {
	return IsMember(p, userID) && !IsLeader(p, userID)
}

// policy is the authorization surface of the whole application.
var policy = map[Action]rule{
	ActionView:            {HasAccess, "you are neither the leader nor a member of this project"},
	ActionListLed:         {IsLeader, "you do not lead this project"},
	ActionListMemberships: {IsMember, "you are not a member of this project"},
	ActionCreate:          {anyone, ""},
	ActionEdit:            {IsLeader, "only the project leader can edit the project"},
	ActionArchive:         {IsLeader, "only the project leader can archive the project"},
	ActionDelete:          {IsLeader, "only the project leader can delete the project"},
	ActionUpdateWork:      {memberNotLeader, "only team members can update completed work"},
}

// Allowed reports whether the policy lets userID perform action on p.
// Unknown actions are never allowed.
func Allowed(action Action, p models.Project, userID string) bool {
	r, ok := policy[action]
	return ok && r.allow(p, userID)
}

// Authorize returns nil when Allowed, otherwise a *common.ForbiddenError
// with a reason fit for the end user.
func Authorize(action Action, p models.Project, userID string) error {
	if Allowed(action, p, userID) {
		return nil
	}
	r, ok := policy[action]
	if !ok || r.reason == "" {
		return common.NewForbidden("operation not permitted")
	}
	return common.NewForbidden(r.reason)
}

// Filter returns the projects for which the action's predicate holds, in
// their original order. The input is not modified.
func Filter(action Action, projects []models.Project, userID string) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if Allowed(action, p, userID) {
			out = append(out, p)
		}
	}
	return out
}
