package usecase

import (
	"fmt"

	"homework-bot/internal/domain/model"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
)

// ExtractSubmissions checks the shape of a status API response and returns
// its submissions in the order the API sent them. Both "homeworks" and
// "current_date" are required; the response itself is not modified.
func ExtractSubmissions(response any) ([]model.Submission, error) {
	const op = "check response"

	body, ok := response.(map[string]any)
	if !ok {
		return nil, &model.Error{Kind: model.KindShape, Op: op, Err: fmt.Errorf("response is %s, want object", jsonType(response))}
	}

	var missing []string
	for _, key := range []string{keyHomeworks, keyCurrentDate} {
		if _, ok := body[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &model.Error{Kind: model.KindMissingField, Op: op, Fields: missing}
	}

	items, ok := body[keyHomeworks].([]any)
	if !ok {
		return nil, &model.Error{
			Kind:   model.KindShape,
			Op:     op,
			Fields: []string{keyHomeworks},
			Err:    fmt.Errorf("homeworks is %s, want array", jsonType(body[keyHomeworks])),
		}
	}

	submissions := make([]model.Submission, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, &model.Error{
				Kind:   model.KindShape,
				Op:     op,
				Fields: []string{fmt.Sprintf("%s[%d]", keyHomeworks, i)},
				Err:    fmt.Errorf("homework is %s, want object", jsonType(item)),
			}
		}
		submissions = append(submissions, model.Submission(record))
	}

	return submissions, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}
