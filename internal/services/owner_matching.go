package services

import (
	"strings"

	"github.com/google/uuid"

	"minutely/internal/models/db_models"
)

// MatchOwner resolves a free-text assignee from the pipeline against the team
// roster. Pure function so the heuristic can be tested and replaced without
// touching ingestion control flow.
//
// Resolution order: exact email, exact name, then case-insensitive partial
// match on name or email. Returns nil when nothing matches; ingestion leaves
// such tasks unassigned rather than failing.
func MatchOwner(members []db_models.TeamMember, text string) *uuid.UUID {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" || needle == "unassigned" {
		return nil
	}

	for i := range members {
		if strings.ToLower(members[i].Email) == needle {
			id := members[i].ID
			return &id
		}
	}

	for i := range members {
		if strings.ToLower(members[i].Name) == needle {
			id := members[i].ID
			return &id
		}
	}

	for i := range members {
		name := strings.ToLower(members[i].Name)
		email := strings.ToLower(members[i].Email)
		if strings.Contains(name, needle) || strings.Contains(needle, name) || strings.Contains(email, needle) {
			id := members[i].ID
			return &id
		}
	}

	return nil
}
