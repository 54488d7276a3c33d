// internal/domain/homework/homework.go
package homework

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known status to the sentence sent to the chat.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable verdict for a status.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Homework is a single record from the "homeworks" list.
// Name and Status are pointers so that an absent key can be told apart from an empty value.
type Homework struct {
	Name            *string `json:"homework_name"`
	Status          *Status `json:"status"`
	LessonName      string  `json:"lesson_name,omitempty"`
	ReviewerComment string  `json:"reviewer_comment,omitempty"`
}

// Response is a validated answer of the homework statuses endpoint.
type Response struct {
	Homeworks   []Homework
	CurrentDate int64 // Cursor for the next request
}
