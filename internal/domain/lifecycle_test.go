package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    ScheduleStatus
		to      ScheduleStatus
		allowed bool
	}{
		{"create draft", StatusNone, StatusDraft, true},
		{"create published", StatusNone, StatusPublished, true},
		{"publish draft", StatusDraft, StatusPublished, true},
		{"archive published", StatusPublished, StatusArchived, true},
		{"restore archived", StatusArchived, StatusPublished, true},

		{"unpublish", StatusPublished, StatusDraft, false},
		{"re-archive", StatusArchived, StatusArchived, false},
		{"archive draft", StatusDraft, StatusArchived, false},
		{"resave draft", StatusDraft, StatusDraft, false},
		{"resave published", StatusPublished, StatusPublished, false},
		{"create archived", StatusNone, StatusArchived, false},
		{"unarchive to draft", StatusArchived, StatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var transitionErr *IllegalTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tt.from, transitionErr.From)
			assert.Equal(t, tt.to, transitionErr.To)
		})
	}
}

func TestIllegalTransitionError_Error(t *testing.T) {
	err := &IllegalTransitionError{From: StatusNone, To: StatusArchived}
	assert.Equal(t, "illegal schedule transition NONE -> ARCHIVED", err.Error())

	err = &IllegalTransitionError{From: StatusPublished, To: StatusDraft}
	assert.Equal(t, "illegal schedule transition PUBLISHED -> DRAFT", err.Error())
}
