package domain

import "time"

// DefaultLogLimit caps cross-task log listings when no explicit limit is given.
const DefaultLogLimit = 100

// TaskLogEntry is an append-only record of one action taken against a task.
// Entries are never updated or deleted; TaskID may point at a task that has
// since been removed, and UserName/TaskTitle are left-join annotations that
// stay nil when the referenced row is gone.
type TaskLogEntry struct {
	ID        uint64
	TaskID    uint64
	UserID    uint64
	Action    string
	Note      *string
	UserName  *string
	TaskTitle *string
	CreatedAt time.Time
}

type AppendLogInput struct {
	TaskID uint64
	UserID uint64
	Action string
	Note   *string
}

type LogFilters struct {
	TaskID *uint64
	UserID *uint64
	Limit  int
}
