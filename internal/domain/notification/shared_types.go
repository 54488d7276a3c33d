// internal/domain/notification/shared_types.go
package notification

// Kind tells what a delivered message was about.
type Kind string

const (
	KindStatus  Kind = "STATUS"  // Homework status change
	KindFailure Kind = "FAILURE" // Diagnostic about a failed poll cycle
)
