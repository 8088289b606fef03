// Package sla holds the single breach predicate shared by the task service
// and the reporting service, so the two views cannot drift apart.
package sla

import "time"

// StatusCompleted is the only status value exempt from breach
// classification. Other statuses, terminal or not, still count.
const StatusCompleted = "Completed"

// IsBreached reports whether a task with the given status and due date is in
// SLA breach at the given instant. A task with no due date never breaches.
func IsBreached(status string, dueDate *time.Time, now time.Time) bool {
	return dueDate != nil && dueDate.Before(now) && status != StatusCompleted
}
