package availability

import (
	"context"
	"reflect"
	"testing"

	"lumiere/models"
	"lumiere/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeScheduleRepo struct {
	windows []models.WeeklyAvailability
	calls   int
}

func (f *fakeScheduleRepo) Create(*models.WeeklyAvailability) error { return nil }
func (f *fakeScheduleRepo) Update(*models.WeeklyAvailability) error { return nil }
func (f *fakeScheduleRepo) Delete(string) error                     { return nil }
func (f *fakeScheduleRepo) GetByID(string) (*models.WeeklyAvailability, error) {
	return nil, nil
}
func (f *fakeScheduleRepo) GetByEmployee(string) ([]models.WeeklyAvailability, error) {
	return nil, nil
}
func (f *fakeScheduleRepo) GetByDayOfWeek(dayOfWeek int, employeeID string) ([]models.WeeklyAvailability, error) {
	f.calls++
	var out []models.WeeklyAvailability
	for _, w := range f.windows {
		if w.DayOfWeek != dayOfWeek {
			continue
		}
		if employeeID != "" && w.EmployeeID != employeeID {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

type fakeBlockedRepo struct {
	segments []models.BlockedInterval
	calls    int
}

func (f *fakeBlockedRepo) Create(*models.BlockedInterval) error { return nil }
func (f *fakeBlockedRepo) Delete(string) error                  { return nil }
func (f *fakeBlockedRepo) GetByID(string) (*models.BlockedInterval, error) {
	return nil, nil
}
func (f *fakeBlockedRepo) GetByEmployee(string) ([]models.BlockedInterval, error) {
	return nil, nil
}
func (f *fakeBlockedRepo) ExistsExact(string, string, string, string) (bool, error) {
	return false, nil
}
func (f *fakeBlockedRepo) GetByDate(date, employeeID string) ([]models.BlockedInterval, error) {
	f.calls++
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

type fakeAppointmentRepo struct {
	appointments []models.Appointment
	calls        int
}

func (f *fakeAppointmentRepo) Create(*models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) GetByID(string) (*models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) List(models.AppointmentFilter) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) UpdateStatusIfCurrent(string, string, bson.M) (bool, error) {
	return false, nil
}
func (f *fakeAppointmentRepo) GetAcceptedByDate(date string) ([]models.Appointment, error) {
	f.calls++
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.Date == date && a.Status == models.StatusAccepted {
			out = append(out, a)
		}
	}
	return out, nil
}

func newResolver(schedule *fakeScheduleRepo, blocked *fakeBlockedRepo, appts *fakeAppointmentRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		ScheduleRepo:       schedule,
		BlockedRepo:        blocked,
		AppointmentRepo:    appts,
		SlotGranularityMin: 30,
	}
}

// 2026-03-02 is a Monday.
const monday = "2026-03-02"

func TestNoWeeklyAvailabilityYieldsEmpty(t *testing.T) {
	svc := newResolver(&fakeScheduleRepo{}, &fakeBlockedRepo{}, &fakeAppointmentRepo{})

	got, err := svc.GetAvailableTimes(context.Background(), monday, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestBookedSlotExcludedForFilteredEmployee(t *testing.T) {
	schedule := &fakeScheduleRepo{windows: []models.WeeklyAvailability{
		{ID: "w1", EmployeeID: "emp-a", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00"},
	}}
	appts := &fakeAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", Date: monday, Time: "10:00:00", Status: models.StatusAccepted, AcceptedEmployeeID: "emp-a"},
	}}
	svc := newResolver(schedule, &fakeBlockedRepo{}, appts)

	got, err := svc.GetAvailableTimes(context.Background(), monday, "emp-a")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"09:00:00", "09:30:00", "10:30:00", "11:00:00", "11:30:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBlockedIntervalRemovesSlots(t *testing.T) {
	schedule := &fakeScheduleRepo{windows: []models.WeeklyAvailability{
		{ID: "w1", EmployeeID: "emp-a", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00"},
	}}
	blocked := &fakeBlockedRepo{segments: []models.BlockedInterval{
		{ID: "b1", EmployeeID: "emp-a", Date: monday, StartTime: "11:00:00", EndTime: "12:00:00"},
	}}
	appts := &fakeAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", Date: monday, Time: "10:00:00", Status: models.StatusAccepted, AcceptedEmployeeID: "emp-a"},
	}}
	svc := newResolver(schedule, blocked, appts)

	got, err := svc.GetAvailableTimes(context.Background(), monday, "emp-a")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"09:00:00", "09:30:00", "10:30:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSlotStaysWhenAnotherEmployeeIsFree(t *testing.T) {
	schedule := &fakeScheduleRepo{windows: []models.WeeklyAvailability{
		{ID: "w1", EmployeeID: "emp-a", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "10:00:00"},
		{ID: "w2", EmployeeID: "emp-b", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "10:00:00"},
	}}
	appts := &fakeAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", Date: monday, Time: "09:00:00", Status: models.StatusAccepted, AcceptedEmployeeID: "emp-a"},
	}}
	svc := newResolver(schedule, &fakeBlockedRepo{}, appts)

	got, err := svc.GetAvailableTimes(context.Background(), monday, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"09:00:00", "09:30:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSlotDisappearsWhenEveryEligibleEmployeeIsOut(t *testing.T) {
	// emp-c exists in the schedule for another weekday only; it must not
	// rescue Monday slots it never declared.
	schedule := &fakeScheduleRepo{windows: []models.WeeklyAvailability{
		{ID: "w1", EmployeeID: "emp-a", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "10:00:00"},
		{ID: "w2", EmployeeID: "emp-b", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "10:00:00"},
		{ID: "w3", EmployeeID: "emp-c", DayOfWeek: 2, StartTime: "09:00:00", EndTime: "17:00:00"},
	}}
	blocked := &fakeBlockedRepo{segments: []models.BlockedInterval{
		{ID: "b1", EmployeeID: "emp-b", Date: monday, StartTime: "09:00:00", EndTime: "10:00:00"},
	}}
	appts := &fakeAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", Date: monday, Time: "09:00:00", Status: models.StatusAccepted, AcceptedEmployeeID: "emp-a"},
	}}
	svc := newResolver(schedule, blocked, appts)

	got, err := svc.GetAvailableTimes(context.Background(), monday, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"09:30:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestOverlappingWindowsYieldSortedDistinctSlots(t *testing.T) {
	schedule := &fakeScheduleRepo{windows: []models.WeeklyAvailability{
		{ID: "w1", EmployeeID: "emp-a", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "11:00:00"},
		{ID: "w2", EmployeeID: "emp-b", DayOfWeek: 1, StartTime: "10:00:00", EndTime: "12:00:00"},
	}}
	svc := newResolver(schedule, &fakeBlockedRepo{}, &fakeAppointmentRepo{})

	got, err := svc.GetAvailableTimes(context.Background(), monday, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"09:00:00", "09:30:00", "10:00:00", "10:30:00", "11:00:00", "11:30:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMalformedDateFailsBeforeStoreAccess(t *testing.T) {
	schedule := &fakeScheduleRepo{}
	blocked := &fakeBlockedRepo{}
	appts := &fakeAppointmentRepo{}
	svc := newResolver(schedule, blocked, appts)

	_, err := svc.GetAvailableTimes(context.Background(), "03/02/2026", "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if cat := utils.ErrorCategory(err); cat != utils.CategoryValidation {
		t.Fatalf("expected validation category, got %q", cat)
	}
	if schedule.calls+blocked.calls+appts.calls != 0 {
		t.Fatal("stores must not be touched on malformed input")
	}
}

func TestResolverIsIdempotent(t *testing.T) {
	schedule := &fakeScheduleRepo{windows: []models.WeeklyAvailability{
		{ID: "w1", EmployeeID: "emp-a", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00"},
	}}
	blocked := &fakeBlockedRepo{segments: []models.BlockedInterval{
		{ID: "b1", EmployeeID: "emp-a", Date: monday, StartTime: "09:00:00", EndTime: "09:30:00"},
	}}
	svc := newResolver(schedule, blocked, &fakeAppointmentRepo{})

	first, err := svc.GetAvailableTimes(context.Background(), monday, "")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := svc.GetAvailableTimes(context.Background(), monday, "")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %v vs %v", first, second)
	}
}
