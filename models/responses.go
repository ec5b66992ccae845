package models

// ScheduleResponse is returned by the control API after a job is scheduled.
type ScheduleResponse struct {
	Handle string `json:"handle"`
}

// RunResponse is returned by the control API after a job ran on demand.
type RunResponse struct {
	Route   string     `json:"route"`
	Outcome JobOutcome `json:"outcome"`
}
