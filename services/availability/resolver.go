package availability

import (
	"context"
	"fmt"
	"sort"

	"lumiere/models"
	"lumiere/utils"

	"golang.org/x/sync/errgroup"
)

// GetAvailableTimes computes the bookable slot starts for one date.
//
// A slot is bookable when at least one employee has a weekly availability
// window covering it, no block on that date covering it, and no accepted
// appointment already occupying it. Slots are only ever generated from
// declared weekly windows.
func (s *DefaultAvailabilityService) GetAvailableTimes(ctx context.Context, date, employeeID string) ([]string, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	dayOfWeek := int(day.Weekday())

	// The three reads are mutually independent, so issue them together.
	var (
		weekly   []models.WeeklyAvailability
		blocks   []models.BlockedInterval
		accepted []models.Appointment
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		weekly, err = s.ScheduleRepo.GetByDayOfWeek(dayOfWeek, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		blocks, err = s.BlockedRepo.GetByDate(date, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		accepted, err = s.AppointmentRepo.GetAcceptedByDate(date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load availability inputs: %w", err)
	}

	if len(weekly) == 0 {
		return []string{}, nil
	}

	step := s.slotStep()

	// slot start (seconds from midnight) -> employees open at that slot.
	open := make(map[int]map[string]struct{})
	for _, w := range weekly {
		for _, slot := range expandWindow(w.StartTime, w.EndTime, step) {
			addToSlotSet(open, slot, w.EmployeeID)
		}
	}

	blocked := make(map[int]map[string]struct{})
	for _, b := range blocks {
		for _, slot := range expandWindow(b.StartTime, b.EndTime, step) {
			addToSlotSet(blocked, slot, b.EmployeeID)
		}
	}

	booked := make(map[int]map[string]struct{})
	for _, appt := range accepted {
		sec, err := utils.ParseTimeOfDay(appt.Time)
		if err != nil {
			continue
		}
		addToSlotSet(booked, sec, appt.AcceptedEmployeeID)
	}

	var free []int
	for slot, employees := range open {
		if anyEmployeeFree(employees, blocked[slot], booked[slot]) {
			free = append(free, slot)
		}
	}
	sort.Ints(free)

	times := make([]string, 0, len(free))
	for _, slot := range free {
		times = append(times, utils.FormatTimeOfDay(slot))
	}
	return times, nil
}

func (s *DefaultAvailabilityService) slotStep() int {
	min := s.SlotGranularityMin
	if min <= 0 {
		min = 30
	}
	return min * 60
}

// anyEmployeeFree reports whether at least one open employee is neither
// blocked nor already booked for the slot.
func anyEmployeeFree(open, blocked, booked map[string]struct{}) bool {
	for emp := range open {
		if _, isBlocked := blocked[emp]; isBlocked {
			continue
		}
		if _, isBooked := booked[emp]; isBooked {
			continue
		}
		return true
	}
	return false
}
