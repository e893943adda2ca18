package service

import (
	"net/http"

	apperrors "github.com/spec-kit/dental-records/pkg/util/errorutil"
)

// Authentication failures. Callers compare with errors.Is; the HTTP layer
// renders them through their embedded status.
var (
	ErrDuplicateEmail     = apperrors.NewDomainError("DUPLICATE_EMAIL", "Email already registered", http.StatusBadRequest, nil)
	ErrInvalidCredentials = apperrors.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized, nil)
	ErrSessionNotFound    = apperrors.NewDomainError("SESSION_NOT_FOUND", "Session not found or expired", http.StatusUnauthorized, nil)
	ErrSessionEnded       = apperrors.NewDomainError("SESSION_NOT_FOUND", "Session not found or already expired", http.StatusUnauthorized, nil)
	ErrAccountNotFound    = apperrors.NewDomainError("ACCOUNT_NOT_FOUND", "User not found", http.StatusNotFound, nil)
)

// Patient record failures.
var (
	ErrPatientNotFound = apperrors.NewDomainError("NOT_FOUND", "Patient not found", http.StatusNotFound, nil)
	ErrBiodataNotFound = apperrors.NewDomainError("NOT_FOUND", "Patient biodata not found", http.StatusNotFound, nil)
	ErrBiodataExists   = apperrors.NewDomainError("BIODATA_EXISTS", "Biodata already exists for this patient. Use update endpoint.", http.StatusBadRequest, nil)
	ErrPlannerNotFound = apperrors.NewDomainError("NOT_FOUND", "Record planner entry not found", http.StatusNotFound, nil)
	ErrPictureNotFound = apperrors.NewDomainError("NOT_FOUND", "Intraoral picture not found", http.StatusNotFound, nil)
	ErrXRayNotFound    = apperrors.NewDomainError("NOT_FOUND", "X-ray not found", http.StatusNotFound, nil)
	ErrVisitNotFound   = apperrors.NewDomainError("NOT_FOUND", "Visit not found", http.StatusNotFound, nil)
)
