package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework-bot/internal/domain/model"
)

func TestFormatVerdict_KnownStatuses(t *testing.T) {
	tests := []struct {
		status model.Status
		want   string
	}{
		{status: model.StatusApproved, want: "Работа проверена: ревьюеру всё понравилось. Ура!"},
		{status: model.StatusReviewing, want: "Работа взята на проверку ревьюером."},
		{status: model.StatusRejected, want: "Работа проверена: у ревьюера есть замечания."},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, err := FormatVerdict(model.Submission{"homework_name": "hw_python", "status": string(tt.status)})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, `Status changed for "hw_python".`), got)
			assert.True(t, strings.HasSuffix(got, tt.want), got)
		})
	}
}

func TestFormatVerdict_ExactText(t *testing.T) {
	got, err := FormatVerdict(model.Submission{"homework_name": "hw1", "status": "approved"})
	require.NoError(t, err)
	assert.Equal(t, `Status changed for "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`, got)
}

func TestFormatVerdict_Errors(t *testing.T) {
	tests := []struct {
		name       string
		submission model.Submission
	}{
		{name: "unknown status", submission: model.Submission{"homework_name": "hw1", "status": "lost"}},
		{name: "empty status", submission: model.Submission{"homework_name": "hw1", "status": ""}},
		{name: "status not a string", submission: model.Submission{"homework_name": "hw1", "status": 1.0}},
		{name: "missing status", submission: model.Submission{"homework_name": "hw1"}},
		{name: "missing name", submission: model.Submission{"status": "approved"}},
		{name: "name not a string", submission: model.Submission{"homework_name": nil, "status": "approved"}},
		{name: "empty record", submission: model.Submission{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatVerdict(tt.submission)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, model.ErrUnknownStatus)
			assert.Equal(t, model.KindUnknownStatus, model.KindOf(err))
		})
	}
}
