package model

// Submission is one homework record as returned by the status API.
// It keeps every field of the record so that change detection compares
// whole records, not only the status.
type Submission map[string]any

// Status is the review verdict code of a submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known status to the sentence sent to the user.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Name returns the homework display name if present and a string.
func (s Submission) Name() (string, bool) {
	return s.stringField("homework_name")
}

// Status returns the raw status code if present and a string.
func (s Submission) Status() (Status, bool) {
	val, ok := s.stringField("status")
	return Status(val), ok
}

func (s Submission) stringField(key string) (string, bool) {
	raw, ok := s[key]
	if !ok {
		return "", false
	}
	val, ok := raw.(string)
	return val, ok
}
