package services

import (
	"testing"

	"github.com/google/uuid"

	"minutely/internal/models/db_models"
)

func rosterMember(name, email string) db_models.TeamMember {
	return db_models.TeamMember{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      name,
		Email:     email,
	}
}

func TestMatchOwner(t *testing.T) {
	priya := rosterMember("Priya Sharma", "priya@example.com")
	alex := rosterMember("Alex Chen", "alex.chen@example.com")
	priyanka := rosterMember("Priyanka Rao", "priyanka@example.com")
	roster := []db_models.TeamMember{priyanka, alex, priya}

	cases := []struct {
		name string
		text string
		want *uuid.UUID
	}{
		{"exact email", "priya@example.com", &priya.ID},
		{"exact email case-insensitive", "PRIYA@Example.COM", &priya.ID},
		{"exact name", "Alex Chen", &alex.ID},
		{"exact name beats partial", "Priya Sharma", &priya.ID},
		{"partial name", "Alex", &alex.ID},
		{"text contains full name", "Alex Chen (design)", &alex.ID},
		{"whitespace trimmed", "  alex chen  ", &alex.ID},
		{"no match", "someone else entirely", nil},
		{"empty", "", nil},
		{"unassigned sentinel", "Unassigned", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchOwner(roster, tc.text)
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("MatchOwner(%q) = %s, want nil", tc.text, got)
			case tc.want != nil && got == nil:
				t.Fatalf("MatchOwner(%q) = nil, want %s", tc.text, *tc.want)
			case tc.want != nil && *got != *tc.want:
				t.Fatalf("MatchOwner(%q) = %s, want %s", tc.text, *got, *tc.want)
			}
		})
	}
}

func TestMatchOwnerExactEmailWinsOverPartialName(t *testing.T) {
	shared := rosterMember("Sam", "team@example.com")
	exact := rosterMember("Samantha Ortiz", "sam@example.com")
	roster := []db_models.TeamMember{shared, exact}

	got := MatchOwner(roster, "sam@example.com")
	if got == nil || *got != exact.ID {
		t.Fatalf("exact email should win, got %v", got)
	}
}
