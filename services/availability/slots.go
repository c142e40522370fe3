package availability

import "lumiere/utils"

// expandWindow emits every grid-aligned slot start t with start <= t < end,
// where start and end are "HH:MM:SS" times and step is the grid in seconds.
// Unparseable windows expand to nothing.
func expandWindow(startTime, endTime string, step int) []int {
	start, err := utils.ParseTimeOfDay(startTime)
	if err != nil {
		return nil
	}
	end, err := utils.ParseTimeOfDay(endTime)
	if err != nil {
		return nil
	}

	var slots []int
	for t := utils.AlignUp(start, step); t < end; t += step {
		slots = append(slots, t)
	}
	return slots
}

func addToSlotSet(m map[int]map[string]struct{}, slot int, employeeID string) {
	set, ok := m[slot]
	if !ok {
		set = make(map[string]struct{})
		m[slot] = set
	}
	set[employeeID] = struct{}{}
}
