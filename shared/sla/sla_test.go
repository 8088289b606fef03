package sla

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsBreached(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name    string
		status  string
		dueDate *time.Time
		want    bool
	}{
		{"overdue open task", "Open", &past, true},
		{"overdue completed task", "Completed", &past, false},
		{"no due date", "Open", nil, false},
		{"due in the future", "Open", &future, false},
		{"overdue closed task still counts", "Closed", &past, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsBreached(tc.status, tc.dueDate, now))
		})
	}
}

func TestIsBreached_DueExactlyNow(t *testing.T) {
	now := time.Now()
	due := now
	// The boundary is strict: dueDate must be before now.
	assert.False(t, IsBreached("Open", &due, now))
}
