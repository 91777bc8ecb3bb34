package clubadmin

import "context"

// AssignmentsClient manages collector/category assignments under
// /assignments.
type AssignmentsClient struct {
	gw *Client
}

// AssignmentList is the /assignments payload: the bindings plus the
// aggregate block.
type AssignmentList struct {
	Assignments []Assignment      `json:"assignments"`
	Summary     AssignmentSummary `json:"summary"`
}

func (ac *AssignmentsClient) List(ctx context.Context) (*AssignmentList, error) {
	var out AssignmentList
	if err := ac.gw.Get(ctx, "/assignments", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Collectors lists the users eligible to receive assignments.
func (ac *AssignmentsClient) Collectors(ctx context.Context) ([]Collector, error) {
	var out []Collector
	if err := ac.gw.Get(ctx, "/assignments/collectors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create binds a collector to a category.
func (ac *AssignmentsClient) Create(ctx context.Context, collectorID, categoryID string) (*Assignment, error) {
	body := struct {
		CollectorID string `json:"collectorId"`
		CategoryID  string `json:"categoryId"`
	}{CollectorID: collectorID, CategoryID: categoryID}

	var out Assignment
	if err := ac.gw.Post(ctx, "/assignments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ac *AssignmentsClient) Delete(ctx context.Context, id string) error {
	return ac.gw.Delete(ctx, "/assignments/"+id, nil)
}
