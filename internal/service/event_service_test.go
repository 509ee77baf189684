package service

import (
	"errors"
	"regexp"
	"testing"

	"ihost-backend/internal/model"
)

func setupEventService() (*EventService, *fakeEventRepo, *fakeEventUserRepo) {
	eventRepo := newFakeEventRepo()
	euRepo := newFakeEventUserRepo()
	return NewEventService(eventRepo, euRepo), eventRepo, euRepo
}

func TestCreate_CreatorRow(t *testing.T) {
	svc, _, euRepo := setupEventService()

	event, err := svc.Create("creator", CreateEventRequest{Title: "Hyttetur", Free: true})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if !regexp.MustCompile(`^IH-[A-Z0-9]{5}$`).MatchString(event.ShareCode) {
		t.Errorf("share code = %q, want IH-XXXXX format", event.ShareCode)
	}

	rows, _ := euRepo.ListByEvent(event.ID, "")
	if len(rows) != 1 {
		t.Fatalf("event user rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.Status != model.EventUserStatusCreator {
		t.Errorf("status = %s, want CREATOR", row.Status)
	}
	if row.Role != model.EventUserRoleCreator {
		t.Errorf("role = %s, want CREATOR", row.Role)
	}
	if row.RespondedAt == nil {
		t.Error("responded_at not set for creator row")
	}
}

func TestEventUpdate_PartialPatch(t *testing.T) {
	svc, _, _ := setupEventService()
	event, _ := svc.Create("creator", CreateEventRequest{
		Title: "Hyttetur", Description: "Helgetur", Location: "Geilo", Free: false, Price: 500,
	})

	title := "Hyttetur 2.0"
	updated, err := svc.Update(event.ID, "creator", EventPatch{Title: &title})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.Title != "Hyttetur 2.0" {
		t.Errorf("title = %q, want Hyttetur 2.0", updated.Title)
	}
	if updated.Description != "Helgetur" || updated.Location != "Geilo" || updated.Price != 500 || updated.Free {
		t.Error("fields outside the patch changed")
	}
}

func TestUpdate_NonCreator(t *testing.T) {
	svc, eventRepo, _ := setupEventService()
	event, _ := svc.Create("creator", CreateEventRequest{Title: "Hyttetur"})
	writesBefore := eventRepo.writes

	title := "hijacked"
	_, err := svc.Update(event.ID, "stranger", EventPatch{Title: &title})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("Update() error = %v, want ErrForbidden", err)
	}
	if eventRepo.writes != writesBefore {
		t.Errorf("writes = %d, want %d (no write on forbidden)", eventRepo.writes, writesBefore)
	}
}

func TestUpdate_Missing(t *testing.T) {
	svc, _, _ := setupEventService()

	title := "x"
	_, err := svc.Update(999, "creator", EventPatch{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestDelete_ReturnsAttendeeCount(t *testing.T) {
	svc, eventRepo, euRepo := setupEventService()
	event, _ := svc.Create("creator", CreateEventRequest{Title: "Hyttetur"})

	// 创建者行之外再加两个受邀者
	for _, uid := range []string{"a", "b"} {
		_ = euRepo.Create(&model.EventUser{EventID: event.ID, UserUID: uid, Status: model.EventUserStatusPending, Role: model.EventUserRoleAttendee})
	}

	deleted, err := svc.Delete(event.ID, "creator")
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted rows = %d, want 3", deleted)
	}
	if e, _ := eventRepo.GetByID(event.ID); e != nil {
		t.Error("event still present after delete")
	}
}

func TestDelete_NoAttendees(t *testing.T) {
	svc, eventRepo, euRepo := setupEventService()
	event, _ := svc.Create("creator", CreateEventRequest{Title: "Solo"})
	// 移除创建者行，模拟零成员
	_, _ = euRepo.DeleteByEvent(event.ID)

	deleted, err := svc.Delete(event.ID, "creator")
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted rows = %d, want 0", deleted)
	}
	if e, _ := eventRepo.GetByID(event.ID); e != nil {
		t.Error("event still present after delete")
	}
}

func TestDelete_NonCreator(t *testing.T) {
	svc, eventRepo, euRepo := setupEventService()
	event, _ := svc.Create("creator", CreateEventRequest{Title: "Hyttetur"})
	writesBefore := euRepo.writes
	deletesBefore := eventRepo.deletes

	_, err := svc.Delete(event.ID, "stranger")
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("Delete() error = %v, want ErrForbidden", err)
	}
	if euRepo.writes != writesBefore || eventRepo.deletes != deletesBefore {
		t.Error("writes occurred on forbidden delete")
	}
}

func TestGetByID_NoMembership(t *testing.T) {
	svc, _, _ := setupEventService()
	event, _ := svc.Create("creator", CreateEventRequest{Title: "Hyttetur"})

	got, eu, err := svc.GetByID(event.ID, "stranger")
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.ID != event.ID {
		t.Errorf("event id = %d, want %d", got.ID, event.ID)
	}
	if eu != nil {
		t.Error("membership created on plain fetch, want nil")
	}
}

func TestGetByID_Missing(t *testing.T) {
	svc, _, _ := setupEventService()

	_, _, err := svc.GetByID(42, "u")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestFindByShareCode_CreatesPendingRow(t *testing.T) {
	svc, _, euRepo := setupEventService()
	event, _ := svc.Create("creator", CreateEventRequest{Title: "Hyttetur"})

	got, eu, err := svc.FindByShareCode(event.ShareCode, "visitor")
	if err != nil {
		t.Fatalf("FindByShareCode() error: %v", err)
	}
	if got.ID != event.ID {
		t.Errorf("event id = %d, want %d", got.ID, event.ID)
	}
	if eu == nil {
		t.Fatal("membership row not created for visitor")
	}
	if eu.Status != model.EventUserStatusPending || eu.Role != model.EventUserRoleAttendee {
		t.Errorf("membership = %s/%s, want PENDING/ATTENDEE", eu.Status, eu.Role)
	}
	if eu.RespondedAt != nil {
		t.Error("responded_at set on fresh invitation")
	}

	stored, _ := euRepo.GetByEventAndUser(event.ID, "visitor")
	if stored == nil {
		t.Error("membership row not persisted")
	}
}

func TestFindByShareCode_ExistingRow(t *testing.T) {
	svc, _, euRepo := setupEventService()
	event, _ := svc.Create("creator", CreateEventRequest{Title: "Hyttetur"})
	_, _, _ = svc.FindByShareCode(event.ShareCode, "visitor")
	writesBefore := euRepo.writes

	_, eu, err := svc.FindByShareCode(event.ShareCode, "visitor")
	if err != nil {
		t.Fatalf("FindByShareCode() error: %v", err)
	}
	if eu == nil {
		t.Fatal("existing membership not returned")
	}
	if euRepo.writes != writesBefore {
		t.Error("duplicate membership row created")
	}
}

func TestFindByShareCode_CreatorWithoutRow(t *testing.T) {
	svc, _, euRepo := setupEventService()
	event, _ := svc.Create("creator", CreateEventRequest{Title: "Hyttetur"})
	// 模拟创建者行丢失的异常状态
	_, _ = euRepo.DeleteByEvent(event.ID)
	writesBefore := euRepo.writes

	_, eu, err := svc.FindByShareCode(event.ShareCode, "creator")
	if err != nil {
		t.Fatalf("FindByShareCode() error: %v", err)
	}
	if eu != nil {
		t.Error("creator membership auto-created, want nil")
	}
	if euRepo.writes != writesBefore {
		t.Error("row written for creator without membership")
	}
}

func TestFindByShareCode_Unknown(t *testing.T) {
	svc, _, _ := setupEventService()

	_, _, err := svc.FindByShareCode("IH-ZZZZZ", "visitor")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByShareCode() error = %v, want ErrNotFound", err)
	}
}
