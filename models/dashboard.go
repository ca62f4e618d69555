package models

// DayStats are the raw per-day counters the dashboard trends are computed
// from. Revenue sums completed appointments only; CompletionRate is
// completed/total × 100.
type DayStats struct {
	Appointments   int     `json:"appointments"`
	Revenue        float64 `json:"revenue"`
	Customers      int     `json:"customers"` // distinct by phone
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// TrendSet carries the four signed-percentage trend strings for the dashboard.
type TrendSet struct {
	Appointments string `json:"appointments"`
	Revenue      string `json:"revenue"`
	Customers    string `json:"customers"`
	Completion   string `json:"completion"`
}

// DashboardStats is the owner dashboard payload: today's counters plus their
// trends against yesterday.
type DashboardStats struct {
	Today  DayStats `json:"today"`
	Trends TrendSet `json:"trends"`
}
