package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name: "complete document",
			input: `{
				"personal_info": {"fullName": "Diego Rossi", "email": "d@example.com"},
				"work_experience": [{"title": "Engineer", "company": "Acme", "description": ["Built things"]}],
				"education": [],
				"skills": ["Go", "SQL"],
				"languages": [{"name": "Italiano", "visible": true}],
				"certifications": []
			}`,
		},
		{
			name:  "personal info alone is enough",
			input: `{"personal_info": {"fullName": "Diego Rossi"}}`,
		},
		{
			name:    "personal info missing",
			input:   `{"work_experience": []}`,
			wantErr: true,
		},
		{
			name:    "personal info wrong type",
			input:   `{"personal_info": "Diego Rossi"}`,
			wantErr: true,
		},
		{
			name:    "skills entries must be strings or named objects",
			input:   `{"personal_info": {}, "skills": [42]}`,
			wantErr: true,
		},
		{
			name:    "toggle object requires a name",
			input:   `{"personal_info": {}, "skills": [{"visible": true}]}`,
			wantErr: true,
		},
		{
			name:    "description entries must be strings",
			input:   `{"personal_info": {}, "work_experience": [{"description": [1, 2]}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume([]byte(tt.input))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateResumeUnparseable(t *testing.T) {
	err := ValidateResume([]byte("{broken"))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "unparseable input is not a field-level validation error")
	assert.Contains(t, err.Error(), "could not run")
}
