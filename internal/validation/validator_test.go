package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/dental-records/internal/domain"
	"github.com/spec-kit/dental-records/internal/validation"
	apperrors "github.com/spec-kit/dental-records/pkg/util/errorutil"
)

type signup struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8,max=100,maxbytes=72"`
	Role     domain.Role `json:"role" validate:"omitempty,role"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      signup
		wantFields map[string]string
	}{
		{
			name:  "valid",
			input: signup{Email: "a@b.com", Password: "longenough"},
		},
		{
			name:  "bad email and short password",
			input: signup{Email: "nope", Password: "short"},
			wantFields: map[string]string{
				"email":    "email must be a valid email",
				"password": "password must be at least 8 characters",
			},
		},
		{
			name:  "unknown role",
			input: signup{Email: "a@b.com", Password: "longenough", Role: "root"},
			wantFields: map[string]string{
				"role": "role must be one of: admin user dentist receptionist",
			},
		},
		{
			name:  "known role",
			input: signup{Email: "a@b.com", Password: "longenough", Role: domain.RoleDentist},
		},
		{
			name:  "password at 72 bytes",
			input: signup{Email: "a@b.com", Password: strings.Repeat("€", 24)},
		},
		{
			name:  "multibyte password over 72 bytes",
			input: signup{Email: "a@b.com", Password: strings.Repeat("€", 24) + "x"},
			wantFields: map[string]string{
				"password": "password must be at most 72 bytes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.input)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			domainErr := apperrors.ToDomainError(err)
			require.NotNil(t, domainErr)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
			assert.Equal(t, 400, domainErr.HTTPStatus)
			require.Len(t, domainErr.Details, len(tt.wantFields))
			for field, msg := range tt.wantFields {
				assert.Equal(t, msg, domainErr.Details[field])
			}
		})
	}
}
