package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"minutely/internal/models/request_models"
	"minutely/pkg/utils"
)

func TestTeamMemberLifecycle(t *testing.T) {
	repo := &mockTeamRepo{}
	svc := NewTeamService(repo)
	managerID := uuid.New()

	created, err := svc.CreateMember(context.Background(), managerID, request_models.CreateTeamMemberRequest{
		Name:  "Alex Chen",
		Email: "alex@example.com",
	})
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	if created.Role != "Team Member" {
		t.Fatalf("role default = %q, want Team Member", created.Role)
	}

	members, err := svc.ListMembers(context.Background(), managerID)
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(members) != 1 || members[0].Email != "alex@example.com" {
		t.Fatalf("unexpected roster: %+v", members)
	}

	err = svc.UpdateMember(context.Background(), managerID, created.ID, request_models.UpdateTeamMemberRequest{
		Name:  "Alex Chen",
		Email: "alex.chen@example.com",
		Role:  "Designer",
	})
	if err != nil {
		t.Fatalf("UpdateMember: %v", err)
	}
	members, _ = svc.ListMembers(context.Background(), managerID)
	if members[0].Email != "alex.chen@example.com" || members[0].Role != "Designer" {
		t.Fatalf("update not applied: %+v", members[0])
	}

	if err := svc.DeleteMember(context.Background(), managerID, created.ID); err != nil {
		t.Fatalf("DeleteMember: %v", err)
	}
	members, _ = svc.ListMembers(context.Background(), managerID)
	if len(members) != 0 {
		t.Fatalf("roster not empty after delete: %+v", members)
	}
}

func TestTeamMemberScopedToManager(t *testing.T) {
	repo := &mockTeamRepo{}
	svc := NewTeamService(repo)
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.CreateMember(context.Background(), owner, request_models.CreateTeamMemberRequest{
		Name:  "Alex Chen",
		Email: "alex@example.com",
	})
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}

	err = svc.UpdateMember(context.Background(), intruder, created.ID, request_models.UpdateTeamMemberRequest{
		Name:  "Hijacked",
		Email: "hijack@example.com",
	})
	if !errors.Is(err, utils.ErrMemberNotFound) {
		t.Fatalf("cross-manager update error = %v, want ErrMemberNotFound", err)
	}

	err = svc.DeleteMember(context.Background(), intruder, created.ID)
	if !errors.Is(err, utils.ErrMemberNotFound) {
		t.Fatalf("cross-manager delete error = %v, want ErrMemberNotFound", err)
	}

	if members, _ := svc.ListMembers(context.Background(), intruder); len(members) != 0 {
		t.Fatalf("intruder sees members: %+v", members)
	}
}
