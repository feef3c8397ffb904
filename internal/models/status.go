package models

// Account roles.
const (
	RoleJobSeeker = "jobseeker"
	RoleRecruiter = "recruiter"
)

// Application statuses.
const (
	StatusApplied     = "applied"
	StatusReviewing   = "reviewing"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusHired       = "hired"
)

// Job post statuses.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Notification types.
const (
	NotificationSystem      = "system"
	NotificationJob         = "job"
	NotificationApplication = "application"
	NotificationCallback    = "callback"
)

// Job types.
var JobTypes = []string{"Full-time", "Part-time", "Contract", "Internship", "Temporary"}

// statusTransitions is the forward-only application state machine. Skips are
// allowed (a recruiter may shortlist straight from applied); rejected and
// hired are terminal.
var statusTransitions = map[string][]string{
	StatusApplied:     {StatusReviewing, StatusShortlisted, StatusRejected, StatusHired},
	StatusReviewing:   {StatusShortlisted, StatusRejected, StatusHired},
	StatusShortlisted: {StatusRejected, StatusHired},
	StatusRejected:    {},
	StatusHired:       {},
}

// ValidApplicationStatus reports whether s is one of the five known statuses.
func ValidApplicationStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether an application may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidJobStatus reports whether s is a known job post status.
func ValidJobStatus(s string) bool {
	return s == JobStatusOpen || s == JobStatusClosed || s == JobStatusDraft
}

// ValidJobType reports whether s is a known employment type.
func ValidJobType(s string) bool {
	for _, t := range JobTypes {
		if t == s {
			return true
		}
	}
	return false
}
