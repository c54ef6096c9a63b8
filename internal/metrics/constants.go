package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameActionsPerformed = "farm_actions_performed_total"
	MetricNameDaysAdvanced     = "farm_days_advanced_total"
	MetricNameCropsHarvested   = "farm_crops_harvested_units_total"
	MetricNamePlayersCreated   = "farm_players_created_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextActionsPerformed = "Total number of farm actions performed"
	HelpTextDaysAdvanced     = "Total number of simulated days advanced"
	HelpTextCropsHarvested   = "Total units of crops harvested"
	HelpTextPlayersCreated   = "Total number of new farms created"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelAction  = "action"
	LabelOutcome = "outcome"
	LabelCrop    = "crop"
	LabelRegion  = "region"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// HTTPLatencyBuckets cover fast in-memory handlers; everything here is
// pure computation so the tail is short.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
