package upsert_schedule

import (
	"fmt"

	"github.com/google/uuid"
)

func validateRequest(req *Request) error {
	if req.StoreID == uuid.Nil {
		return fmt.Errorf("%w: store id is required", ErrInvalidInput)
	}
	if req.CustomerID == uuid.Nil {
		return fmt.Errorf("%w: customer is required", ErrInvalidInput)
	}
	if req.EmployeeID == uuid.Nil {
		return fmt.Errorf("%w: employee is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: select at least one service", ErrInvalidInput)
	}
	if req.ScheduleID != nil && *req.ScheduleID == uuid.Nil {
		return fmt.Errorf("%w: schedule id is empty", ErrInvalidInput)
	}
	return nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// splitSelection делит выбор на найденные в каталоге (без повторов) и отсутствующие
func splitSelection(selected []uuid.UUID, found []string) ([]uuid.UUID, []uuid.UUID) {
	present := make(map[string]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}

	kept := make([]uuid.UUID, 0, len(found))
	dropped := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{}, len(selected))
	for _, id := range selected {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, ok := present[id.String()]; ok {
			kept = append(kept, id)
		} else {
			dropped = append(dropped, id)
		}
	}

	return kept, dropped
}
