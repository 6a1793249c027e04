package domain

type StatusCount struct {
	Status TaskStatus
	Count  int
}

type UserTaskCount struct {
	UserID    uint64
	Name      string
	TaskCount int
}

type UserActivity struct {
	UserID   uint64
	Name     string
	LogCount int
}

// Dashboard is recomputed from live data on every request; there is no cached
// or materialized view behind it.
type Dashboard struct {
	TasksByStatus    []StatusCount
	TasksByUser      []UserTaskCount
	MostActiveUser   *UserActivity
	RecentInProgress []Task
}
