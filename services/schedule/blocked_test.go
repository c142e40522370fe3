package schedule

import (
	"context"
	"testing"

	"lumiere/models"
	"lumiere/utils"
)

type fakeBlockedRepo struct {
	segments map[string]models.BlockedInterval
}

func newFakeBlockedRepo() *fakeBlockedRepo {
	return &fakeBlockedRepo{segments: make(map[string]models.BlockedInterval)}
}

func (f *fakeBlockedRepo) Create(b *models.BlockedInterval) error {
	f.segments[b.ID] = *b
	return nil
}

func (f *fakeBlockedRepo) Delete(id string) error {
	delete(f.segments, id)
	return nil
}

func (f *fakeBlockedRepo) GetByID(id string) (*models.BlockedInterval, error) {
	if b, ok := f.segments[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (f *fakeBlockedRepo) GetByDate(date, employeeID string) ([]models.BlockedInterval, error) {
	var out []models.BlockedInterval
	for _, b := range f.segments {
		if b.Date != date {
			continue
		}
		if employeeID != "" && b.EmployeeID != employeeID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBlockedRepo) GetByEmployee(employeeID string) ([]models.BlockedInterval, error) {
	var out []models.BlockedInterval
	for _, b := range f.segments {
		if b.EmployeeID == employeeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockedRepo) ExistsExact(employeeID, date, startTime, endTime string) (bool, error) {
	for _, b := range f.segments {
		if b.EmployeeID == employeeID && b.Date == date && b.StartTime == startTime && b.EndTime == endTime {
			return true, nil
		}
	}
	return false, nil
}

func findSegment(segments []models.BlockedInterval, date string) (models.BlockedInterval, bool) {
	for _, s := range segments {
		if s.Date == date {
			return s, true
		}
	}
	return models.BlockedInterval{}, false
}

func TestBlockRangeExpandsAcrossDays(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newScheduleService(newFakeScheduleRepo(), blocked)

	created, err := svc.BlockRange(context.Background(), staffA, models.BlockedRangeRequest{
		EmployeeID: "emp-a",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		StartTime:  "10:00:00",
		EndTime:    "14:00:00",
		Reason:     "vacation",
	})
	if err != nil {
		t.Fatalf("block range: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(created))
	}

	first, ok := findSegment(created, "2026-03-02")
	if !ok || first.StartTime != "10:00:00" || first.EndTime != models.EndOfDay {
		t.Fatalf("bad first-day segment: %+v", first)
	}
	mid, ok := findSegment(created, "2026-03-03")
	if !ok || mid.StartTime != models.StartOfDay || mid.EndTime != models.EndOfDay {
		t.Fatalf("bad interior segment: %+v", mid)
	}
	last, ok := findSegment(created, "2026-03-04")
	if !ok || last.StartTime != models.StartOfDay || last.EndTime != "14:00:00" {
		t.Fatalf("bad last-day segment: %+v", last)
	}
	for _, seg := range created {
		if seg.Reason != "vacation" {
			t.Fatalf("reason not carried: %+v", seg)
		}
		if seg.ID == "" {
			t.Fatal("segment stored without an ID")
		}
	}
}

func TestBlockRangeSingleDayKeepsBothTimes(t *testing.T) {
	svc := newScheduleService(newFakeScheduleRepo(), newFakeBlockedRepo())

	created, err := svc.BlockRange(context.Background(), staffA, models.BlockedRangeRequest{
		EmployeeID: "emp-a",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		StartTime:  "10:00:00",
		EndTime:    "14:00:00",
	})
	if err != nil {
		t.Fatalf("block range: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(created))
	}
	if created[0].StartTime != "10:00:00" || created[0].EndTime != "14:00:00" {
		t.Fatalf("bad segment: %+v", created[0])
	}
}

func TestBlockRangeSkipsDuplicateSegments(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newScheduleService(newFakeScheduleRepo(), blocked)

	req := models.BlockedRangeRequest{
		EmployeeID: "emp-a",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		StartTime:  "10:00:00",
		EndTime:    "14:00:00",
	}
	if _, err := svc.BlockRange(context.Background(), staffA, req); err != nil {
		t.Fatalf("first block: %v", err)
	}

	// Widening the range re-creates only the new day.
	req.EndDate = "2026-03-05"
	created, err := svc.BlockRange(context.Background(), staffA, req)
	if err != nil {
		t.Fatalf("second block: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 new segments, got %d: %+v", len(created), created)
	}
	// Day 4 was previously the last day (ending 14:00:00); in the widened
	// range it is interior and covers the whole day, so it is new.
	if _, ok := findSegment(created, "2026-03-04"); !ok {
		t.Fatal("reshaped interior segment missing")
	}
	if _, ok := findSegment(created, "2026-03-05"); !ok {
		t.Fatal("new last-day segment missing")
	}
}

func TestBlockRangeAllDuplicatesConflicts(t *testing.T) {
	svc := newScheduleService(newFakeScheduleRepo(), newFakeBlockedRepo())

	req := models.BlockedRangeRequest{
		EmployeeID: "emp-a",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		StartTime:  "10:00:00",
		EndTime:    "14:00:00",
	}
	if _, err := svc.BlockRange(context.Background(), staffA, req); err != nil {
		t.Fatalf("first block: %v", err)
	}
	_, err := svc.BlockRange(context.Background(), staffA, req)
	if cat := utils.ErrorCategory(err); cat != utils.CategoryConflict {
		t.Fatalf("expected conflict category, got %v", err)
	}
}

func TestBlockRangeValidation(t *testing.T) {
	svc := newScheduleService(newFakeScheduleRepo(), newFakeBlockedRepo())

	cases := []struct {
		name string
		req  models.BlockedRangeRequest
	}{
		{"missing employee", models.BlockedRangeRequest{StartDate: "2026-03-02", EndDate: "2026-03-02", StartTime: "10:00:00", EndTime: "14:00:00"}},
		{"bad start date", models.BlockedRangeRequest{EmployeeID: "emp-a", StartDate: "02/03/2026", EndDate: "2026-03-02", StartTime: "10:00:00", EndTime: "14:00:00"}},
		{"end before start", models.BlockedRangeRequest{EmployeeID: "emp-a", StartDate: "2026-03-04", EndDate: "2026-03-02", StartTime: "10:00:00", EndTime: "14:00:00"}},
		{"inverted single-day times", models.BlockedRangeRequest{EmployeeID: "emp-a", StartDate: "2026-03-02", EndDate: "2026-03-02", StartTime: "14:00:00", EndTime: "10:00:00"}},
		{"garbage time", models.BlockedRangeRequest{EmployeeID: "emp-a", StartDate: "2026-03-02", EndDate: "2026-03-02", StartTime: "later", EndTime: "14:00:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BlockRange(context.Background(), staffA, tc.req)
			if cat := utils.ErrorCategory(err); cat != utils.CategoryValidation {
				t.Fatalf("expected validation category, got %v", err)
			}
		})
	}
}

func TestBlockRangeForbiddenForOtherStaff(t *testing.T) {
	svc := newScheduleService(newFakeScheduleRepo(), newFakeBlockedRepo())

	_, err := svc.BlockRange(context.Background(), staffB, models.BlockedRangeRequest{
		EmployeeID: "emp-a",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		StartTime:  "10:00:00",
		EndTime:    "14:00:00",
	})
	if cat := utils.ErrorCategory(err); cat != utils.CategoryForbidden {
		t.Fatalf("expected forbidden category, got %v", err)
	}
}

func TestUnblockSegment(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newScheduleService(newFakeScheduleRepo(), blocked)

	created, err := svc.BlockRange(context.Background(), staffA, models.BlockedRangeRequest{
		EmployeeID: "emp-a",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		StartTime:  "10:00:00",
		EndTime:    "14:00:00",
	})
	if err != nil {
		t.Fatalf("block: %v", err)
	}
	id := created[0].ID

	err = svc.UnblockSegment(context.Background(), staffB, id)
	if cat := utils.ErrorCategory(err); cat != utils.CategoryForbidden {
		t.Fatalf("expected forbidden category, got %v", err)
	}
	if err := svc.UnblockSegment(context.Background(), admin, id); err != nil {
		t.Fatalf("admin unblock: %v", err)
	}
	if len(blocked.segments) != 0 {
		t.Fatal("segment not removed")
	}

	err = svc.UnblockSegment(context.Background(), admin, id)
	if cat := utils.ErrorCategory(err); cat != utils.CategoryNotFound {
		t.Fatalf("expected not_found category, got %v", err)
	}
}
