package appointment

import (
	"context"
	"testing"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeAppointmentRepo struct {
	appointments map[string]models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]models.Appointment)}
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	f.appointments[appt.ID] = *appt
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	if a, ok := f.appointments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) GetAcceptedByDate(date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.Date == date && a.Status == models.StatusAccepted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) List(filter models.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.EmployeeID != "" && a.RequestedEmployeeID != filter.EmployeeID && a.AcceptedEmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatusIfCurrent(id, currentStatus string, set bson.M) (bool, error) {
	a, ok := f.appointments[id]
	if !ok || a.Status != currentStatus {
		return false, nil
	}
	if v, ok := set["status"]; ok {
		a.Status = v.(string)
	}
	if v, ok := set["acceptedEmployeeId"]; ok {
		a.AcceptedEmployeeID = v.(string)
	}
	if v, ok := set["declineReason"]; ok {
		a.DeclineReason = v.(string)
	}
	if v, ok := set["updated_at"]; ok {
		a.UpdatedAt = v.(time.Time)
	}
	f.appointments[id] = a
	return true, nil
}

type fakeBlockedRepo struct {
	segments []models.BlockedInterval
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

type fakeCatalogRepo struct {
	services map[string]models.SalonService
}

func (f *fakeCatalogRepo) CreateService(*models.SalonService) error { return nil }
func (f *fakeCatalogRepo) UpdateService(*models.SalonService) error { return nil }
func (f *fakeCatalogRepo) DeleteService(string) error               { return nil }
func (f *fakeCatalogRepo) GetServiceByID(id string) (*models.SalonService, error) {
	if svc, ok := f.services[id]; ok {
		return &svc, nil
	}
	return nil, nil
}
func (f *fakeCatalogRepo) ListServices(bool) ([]models.SalonService, error) { return nil, nil }
func (f *fakeCatalogRepo) CreatePost(*models.Post) error                    { return nil }
func (f *fakeCatalogRepo) UpdatePost(*models.Post) error                    { return nil }
func (f *fakeCatalogRepo) DeletePost(string) error                          { return nil }
func (f *fakeCatalogRepo) GetPostByID(string) (*models.Post, error)         { return nil, nil }
func (f *fakeCatalogRepo) ListPosts() ([]models.Post, error)                { return nil, nil }

type recordingNotifier struct {
	events []models.AppointmentEvent
}

func (r *recordingNotifier) PublishAppointmentEvent(_ context.Context, ev models.AppointmentEvent) {
	r.events = append(r.events, ev)
}

func (r *recordingNotifier) lastEvent(t *testing.T) models.AppointmentEvent {
	t.Helper()
	if len(r.events) == 0 {
		t.Fatal("expected a notification event")
	}
	return r.events[len(r.events)-1]
}

var (
	staffA = &models.Employee{ID: "emp-a", Role: models.RoleStaff}
	staffB = &models.Employee{ID: "emp-b", Role: models.RoleStaff}
	admin  = &models.Employee{ID: "emp-admin", Role: models.RoleAdmin}
)

type fixture struct {
	svc      *DefaultAppointmentService
	repo     *fakeAppointmentRepo
	blocked  *fakeBlockedRepo
	notifier *recordingNotifier
}

func newFixture() *fixture {
	repo := newFakeAppointmentRepo()
	blocked := &fakeBlockedRepo{}
	notifier := &recordingNotifier{}
	catalog := &fakeCatalogRepo{services: map[string]models.SalonService{
		"svc-cut": {ID: "svc-cut", Name: "Haircut", DurationMin: 30, Active: true},
		"svc-old": {ID: "svc-old", Name: "Retired", DurationMin: 30, Active: false},
	}}
	return &fixture{
		svc: &DefaultAppointmentService{
			AppointmentRepo:    repo,
			BlockedRepo:        blocked,
			CatalogRepo:        catalog,
			Notifier:           notifier,
			SlotGranularityMin: 30,
		},
		repo:     repo,
		blocked:  blocked,
		notifier: notifier,
	}
}

func validRequest() models.AppointmentRequest {
	return models.AppointmentRequest{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+3312345678",
		ServiceID:     "svc-cut",
		Date:          "2026-03-02",
		Time:          "10:00:00",
	}
}

func TestRequestCreatesPendingAppointment(t *testing.T) {
	f := newFixture()

	appt, err := f.svc.Request(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if appt.Status != models.StatusPending {
		t.Fatalf("expected pending, got %q", appt.Status)
	}
	if appt.ServiceName != "Haircut" {
		t.Fatalf("service name not resolved, got %q", appt.ServiceName)
	}
	if appt.ID == "" {
		t.Fatal("expected an ID")
	}
	ev := f.notifier.lastEvent(t)
	if ev.Type != models.EventAppointmentRequested {
		t.Fatalf("expected requested event, got %q", ev.Type)
	}
}

func TestRequestValidation(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name   string
		mutate func(*models.AppointmentRequest)
	}{
		{"missing name", func(r *models.AppointmentRequest) { r.CustomerName = "" }},
		{"bad date", func(r *models.AppointmentRequest) { r.Date = "tomorrow" }},
		{"bad time", func(r *models.AppointmentRequest) { r.Time = "10 o'clock" }},
		{"off the grid", func(r *models.AppointmentRequest) { r.Time = "10:10:00" }},
		{"unknown service", func(r *models.AppointmentRequest) { r.ServiceID = "svc-nope" }},
		{"inactive service", func(r *models.AppointmentRequest) { r.ServiceID = "svc-old" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := f.svc.Request(context.Background(), req)
			if cat := utils.ErrorCategory(err); cat != utils.CategoryValidation {
				t.Fatalf("expected validation category, got %v", err)
			}
		})
	}
}

func TestAcceptAssignsEmployee(t *testing.T) {
	f := newFixture()
	appt, _ := f.svc.Request(context.Background(), validRequest())

	accepted, err := f.svc.Accept(context.Background(), staffA, appt.ID, "")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != models.StatusAccepted {
		t.Fatalf("expected accepted, got %q", accepted.Status)
	}
	if accepted.AcceptedEmployeeID != "emp-a" {
		t.Fatalf("expected emp-a, got %q", accepted.AcceptedEmployeeID)
	}
	ev := f.notifier.lastEvent(t)
	if ev.Type != models.EventAppointmentAccepted || ev.EmployeeID != "emp-a" {
		t.Fatalf("bad event: %+v", ev)
	}
}

func TestAcceptLosesRaceCleanly(t *testing.T) {
	f := newFixture()
	appt, _ := f.svc.Request(context.Background(), validRequest())

	if _, err := f.svc.Accept(context.Background(), staffA, appt.ID, ""); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	_, err := f.svc.Accept(context.Background(), staffB, appt.ID, "")
	if cat := utils.ErrorCategory(err); cat != utils.CategoryConflict {
		t.Fatalf("expected conflict category, got %v", err)
	}
	stored := f.repo.appointments[appt.ID]
	if stored.AcceptedEmployeeID != "emp-a" {
		t.Fatalf("winner overwritten: %q", stored.AcceptedEmployeeID)
	}
}

func TestAcceptRespectsRequestedEmployee(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.RequestedEmployeeID = "emp-b"
	appt, _ := f.svc.Request(context.Background(), req)

	_, err := f.svc.Accept(context.Background(), staffA, appt.ID, "")
	if cat := utils.ErrorCategory(err); cat != utils.CategoryForbidden {
		t.Fatalf("expected forbidden category, got %v", err)
	}

	// Admins may reassign to someone else.
	if _, err := f.svc.Accept(context.Background(), admin, appt.ID, "emp-a"); err != nil {
		t.Fatalf("admin accept: %v", err)
	}
}

func TestAcceptRefusesBlockedSlot(t *testing.T) {
	f := newFixture()
	f.blocked.segments = []models.BlockedInterval{
		{EmployeeID: "emp-a", Date: "2026-03-02", StartTime: "09:00:00", EndTime: "12:00:00"},
	}
	appt, _ := f.svc.Request(context.Background(), validRequest())

	_, err := f.svc.Accept(context.Background(), staffA, appt.ID, "")
	if cat := utils.ErrorCategory(err); cat != utils.CategoryConflict {
		t.Fatalf("expected conflict category, got %v", err)
	}

	// A block ending exactly at the slot start does not cover it.
	f.blocked.segments[0].EndTime = "10:00:00"
	if _, err := f.svc.Accept(context.Background(), staffA, appt.ID, ""); err != nil {
		t.Fatalf("accept after block edge: %v", err)
	}
}

func TestAcceptRefusesDoubleBooking(t *testing.T) {
	f := newFixture()
	first, _ := f.svc.Request(context.Background(), validRequest())
	second, _ := f.svc.Request(context.Background(), validRequest())

	if _, err := f.svc.Accept(context.Background(), staffA, first.ID, ""); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	_, err := f.svc.Accept(context.Background(), staffA, second.ID, "")
	if cat := utils.ErrorCategory(err); cat != utils.CategoryConflict {
		t.Fatalf("expected conflict category, got %v", err)
	}
	// Another employee is still free to take it.
	if _, err := f.svc.Accept(context.Background(), staffB, second.ID, ""); err != nil {
		t.Fatalf("second employee accept: %v", err)
	}
}

func TestDeclineRequiresReason(t *testing.T) {
	f := newFixture()
	appt, _ := f.svc.Request(context.Background(), validRequest())

	_, err := f.svc.Decline(context.Background(), staffA, appt.ID, "   ")
	if cat := utils.ErrorCategory(err); cat != utils.CategoryValidation {
		t.Fatalf("expected validation category, got %v", err)
	}

	declined, err := f.svc.Decline(context.Background(), staffA, appt.ID, "fully booked")
	if err != nil {
		t.Fatalf("decline: %v", err)
	}
	if declined.Status != models.StatusDeclined || declined.DeclineReason != "fully booked" {
		t.Fatalf("bad declined state: %+v", declined)
	}
	ev := f.notifier.lastEvent(t)
	if ev.Type != models.EventAppointmentDeclined || ev.Reason != "fully booked" {
		t.Fatalf("bad event: %+v", ev)
	}
}

func TestDeclineAuthorization(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.RequestedEmployeeID = "emp-b"
	appt, _ := f.svc.Request(context.Background(), req)

	_, err := f.svc.Decline(context.Background(), staffA, appt.ID, "not mine")
	if cat := utils.ErrorCategory(err); cat != utils.CategoryForbidden {
		t.Fatalf("expected forbidden category, got %v", err)
	}
	if _, err := f.svc.Decline(context.Background(), staffB, appt.ID, "on leave"); err != nil {
		t.Fatalf("requested employee decline: %v", err)
	}
}

func TestCancelByCustomer(t *testing.T) {
	f := newFixture()
	appt, _ := f.svc.Request(context.Background(), validRequest())

	cancelled, err := f.svc.CancelByCustomer(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("cancel pending: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %q", cancelled.Status)
	}

	// Terminal states refuse further cancellation.
	_, err = f.svc.CancelByCustomer(context.Background(), appt.ID)
	if cat := utils.ErrorCategory(err); cat != utils.CategoryConflict {
		t.Fatalf("expected conflict category, got %v", err)
	}
}

func TestCancelByCustomerAfterAccept(t *testing.T) {
	f := newFixture()
	appt, _ := f.svc.Request(context.Background(), validRequest())
	if _, err := f.svc.Accept(context.Background(), staffA, appt.ID, ""); err != nil {
		t.Fatalf("accept: %v", err)
	}

	cancelled, err := f.svc.CancelByCustomer(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("cancel accepted: %v", err)
	}
	ev := f.notifier.lastEvent(t)
	if ev.Type != models.EventAppointmentCancelled || ev.EmployeeID != "emp-a" {
		t.Fatalf("bad event: %+v", ev)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %q", cancelled.Status)
	}
}

func TestCancelByStaff(t *testing.T) {
	f := newFixture()
	appt, _ := f.svc.Request(context.Background(), validRequest())

	// Pending appointments are declined, not staff-cancelled.
	_, err := f.svc.CancelByStaff(context.Background(), staffA, appt.ID)
	if cat := utils.ErrorCategory(err); cat != utils.CategoryConflict {
		t.Fatalf("expected conflict category, got %v", err)
	}

	if _, err := f.svc.Accept(context.Background(), staffA, appt.ID, ""); err != nil {
		t.Fatalf("accept: %v", err)
	}
	_, err = f.svc.CancelByStaff(context.Background(), staffB, appt.ID)
	if cat := utils.ErrorCategory(err); cat != utils.CategoryForbidden {
		t.Fatalf("expected forbidden category, got %v", err)
	}
	if _, err := f.svc.CancelByStaff(context.Background(), staffA, appt.ID); err != nil {
		t.Fatalf("accepting employee cancel: %v", err)
	}
}

func TestGetMissingAppointment(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Get(context.Background(), "missing")
	if cat := utils.ErrorCategory(err); cat != utils.CategoryNotFound {
		t.Fatalf("expected not_found category, got %v", err)
	}
}
