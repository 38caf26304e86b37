package assignment

// EventPathRequest binds the event id from the route
type EventPathRequest struct {
	EventID string `param:"id" validate:"required,event_id"`
}

// ListAssignmentsRequest represents the parameters for listing assignments
type ListAssignmentsRequest struct {
	EventID string `param:"id" validate:"required,event_id"`
	Round   *int   `query:"round" validate:"omitempty,min=1"`
}
