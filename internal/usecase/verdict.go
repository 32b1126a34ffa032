package usecase

import (
	"fmt"

	"homework-bot/internal/domain/model"
)

// FormatVerdict renders the notification text for a submission.
// A missing name or a missing or unknown status is an error, never a blank verdict.
func FormatVerdict(s model.Submission) (string, error) {
	const op = "parse status"

	status, ok := s.Status()
	if !ok {
		return "", &model.Error{Kind: model.KindUnknownStatus, Op: op, Fields: []string{"status"}, Err: fmt.Errorf("status is missing")}
	}

	verdict, ok := model.Verdicts[status]
	if !ok {
		return "", &model.Error{Kind: model.KindUnknownStatus, Op: op, Fields: []string{"status"}, Err: fmt.Errorf("unexpected status %q", status)}
	}

	name, ok := s.Name()
	if !ok {
		return "", &model.Error{Kind: model.KindUnknownStatus, Op: op, Fields: []string{"homework_name"}, Err: fmt.Errorf("homework name is missing")}
	}

	return fmt.Sprintf(`Status changed for "%s". %s`, name, verdict), nil
}
