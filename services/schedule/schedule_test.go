package schedule

import (
	"context"
	"testing"

	"lumiere/models"
	"lumiere/utils"
)

type fakeScheduleRepo struct {
	windows map[string]models.WeeklyAvailability
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{windows: make(map[string]models.WeeklyAvailability)}
}

func (f *fakeScheduleRepo) Create(av *models.WeeklyAvailability) error {
	f.windows[av.ID] = *av
	return nil
}

func (f *fakeScheduleRepo) Update(av *models.WeeklyAvailability) error {
	f.windows[av.ID] = *av
	return nil
}

func (f *fakeScheduleRepo) Delete(id string) error {
	delete(f.windows, id)
	return nil
}

func (f *fakeScheduleRepo) GetByID(id string) (*models.WeeklyAvailability, error) {
	if av, ok := f.windows[id]; ok {
		return &av, nil
	}
	return nil, nil
}

func (f *fakeScheduleRepo) GetByEmployee(employeeID string) ([]models.WeeklyAvailability, error) {
	var out []models.WeeklyAvailability
	for _, av := range f.windows {
		if av.EmployeeID == employeeID {
			out = append(out, av)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) GetByDayOfWeek(dayOfWeek int, employeeID string) ([]models.WeeklyAvailability, error) {
	var out []models.WeeklyAvailability
	for _, av := range f.windows {
		if av.DayOfWeek != dayOfWeek {
			continue
		}
		if employeeID != "" && av.EmployeeID != employeeID {
			continue
		}
		out = append(out, av)
	}
	return out, nil
}

var (
	staffA = &models.Employee{ID: "emp-a", Role: models.RoleStaff}
	staffB = &models.Employee{ID: "emp-b", Role: models.RoleStaff}
	admin  = &models.Employee{ID: "emp-admin", Role: models.RoleAdmin}
)

func newScheduleService(repo *fakeScheduleRepo, blocked *fakeBlockedRepo) *DefaultScheduleService {
	if blocked == nil {
		blocked = newFakeBlockedRepo()
	}
	return &DefaultScheduleService{
		ScheduleRepo:       repo,
		BlockedRepo:        blocked,
		SlotGranularityMin: 30,
	}
}

func TestCreateWindow(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newScheduleService(repo, nil)

	av := &models.WeeklyAvailability{
		EmployeeID: "emp-a",
		DayOfWeek:  1,
		StartTime:  "09:00",
		EndTime:    "17:00:00",
	}
	if err := svc.CreateWindow(context.Background(), staffA, av); err != nil {
		t.Fatalf("create: %v", err)
	}
	if av.ID == "" {
		t.Fatal("expected an ID to be assigned")
	}
	stored := repo.windows[av.ID]
	if stored.StartTime != "09:00:00" {
		t.Fatalf("expected canonical start time, got %q", stored.StartTime)
	}
	if stored.EndTime != "17:00:00" {
		t.Fatalf("expected canonical end time, got %q", stored.EndTime)
	}
}

func TestCreateWindowValidation(t *testing.T) {
	svc := newScheduleService(newFakeScheduleRepo(), nil)

	cases := []struct {
		name string
		av   models.WeeklyAvailability
	}{
		{"missing employee", models.WeeklyAvailability{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "10:00:00"}},
		{"day out of range", models.WeeklyAvailability{EmployeeID: "emp-admin", DayOfWeek: 7, StartTime: "09:00:00", EndTime: "10:00:00"}},
		{"inverted times", models.WeeklyAvailability{EmployeeID: "emp-admin", DayOfWeek: 1, StartTime: "10:00:00", EndTime: "09:00:00"}},
		{"off the grid", models.WeeklyAvailability{EmployeeID: "emp-admin", DayOfWeek: 1, StartTime: "09:10:00", EndTime: "10:00:00"}},
		{"garbage time", models.WeeklyAvailability{EmployeeID: "emp-admin", DayOfWeek: 1, StartTime: "soon", EndTime: "10:00:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			av := tc.av
			err := svc.CreateWindow(context.Background(), admin, &av)
			if err == nil {
				t.Fatal("expected error")
			}
			if cat := utils.ErrorCategory(err); cat != utils.CategoryValidation {
				t.Fatalf("expected validation category, got %q", cat)
			}
		})
	}
}

func TestCreateWindowForbiddenForOtherStaff(t *testing.T) {
	svc := newScheduleService(newFakeScheduleRepo(), nil)

	av := &models.WeeklyAvailability{
		EmployeeID: "emp-a",
		DayOfWeek:  1,
		StartTime:  "09:00:00",
		EndTime:    "10:00:00",
	}
	err := svc.CreateWindow(context.Background(), staffB, av)
	if cat := utils.ErrorCategory(err); cat != utils.CategoryForbidden {
		t.Fatalf("expected forbidden category, got %v", err)
	}

	// Admins may manage anyone's schedule.
	if err := svc.CreateWindow(context.Background(), admin, av); err != nil {
		t.Fatalf("admin create: %v", err)
	}
}

func TestUpdateWindowKeepsOwnerAndCreatedAt(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newScheduleService(repo, nil)

	av := &models.WeeklyAvailability{
		EmployeeID: "emp-a",
		DayOfWeek:  1,
		StartTime:  "09:00:00",
		EndTime:    "10:00:00",
	}
	if err := svc.CreateWindow(context.Background(), staffA, av); err != nil {
		t.Fatalf("create: %v", err)
	}
	created := repo.windows[av.ID].CreatedAt

	update := &models.WeeklyAvailability{
		ID:         av.ID,
		EmployeeID: "emp-b", // must be ignored
		DayOfWeek:  2,
		StartTime:  "10:00:00",
		EndTime:    "12:00:00",
	}
	if err := svc.UpdateWindow(context.Background(), staffA, update); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored := repo.windows[av.ID]
	if stored.EmployeeID != "emp-a" {
		t.Fatalf("window owner changed to %q", stored.EmployeeID)
	}
	if stored.DayOfWeek != 2 {
		t.Fatalf("dayOfWeek not updated, got %d", stored.DayOfWeek)
	}
	if !stored.CreatedAt.Equal(created) {
		t.Fatal("created_at must survive updates")
	}
}

func TestUpdateWindowNotFound(t *testing.T) {
	svc := newScheduleService(newFakeScheduleRepo(), nil)

	err := svc.UpdateWindow(context.Background(), admin, &models.WeeklyAvailability{
		ID:        "missing",
		DayOfWeek: 1,
		StartTime: "09:00:00",
		EndTime:   "10:00:00",
	})
	if cat := utils.ErrorCategory(err); cat != utils.CategoryNotFound {
		t.Fatalf("expected not_found category, got %v", err)
	}
}

func TestDeleteWindowAuthorization(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newScheduleService(repo, nil)

	av := &models.WeeklyAvailability{
		EmployeeID: "emp-a",
		DayOfWeek:  1,
		StartTime:  "09:00:00",
		EndTime:    "10:00:00",
	}
	if err := svc.CreateWindow(context.Background(), staffA, av); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := svc.DeleteWindow(context.Background(), staffB, av.ID)
	if cat := utils.ErrorCategory(err); cat != utils.CategoryForbidden {
		t.Fatalf("expected forbidden category, got %v", err)
	}
	if err := svc.DeleteWindow(context.Background(), staffA, av.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(repo.windows) != 0 {
		t.Fatal("window not removed")
	}
}

func TestListWindowsEmptyIsNotNil(t *testing.T) {
	svc := newScheduleService(newFakeScheduleRepo(), nil)

	windows, err := svc.ListWindows(context.Background(), "emp-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if windows == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
