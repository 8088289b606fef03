package service

import "errors"

// Domain failure kinds. Handlers map these to HTTP statuses explicitly
// instead of inspecting message text.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrAssigneeNotFound    = errors.New("assignee user does not exist")
	ErrForbidden           = errors.New("only Admin can delete tasks")
	ErrUpstreamUnavailable = errors.New("user service unavailable")
)
