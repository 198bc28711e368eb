package services

import (
	apierrors "github.com/yukikurage/skillswap-api/internal/errors"
)

// Lookup failures
var (
	ErrUserNotFound   = apierrors.New(apierrors.KindNotFound, "user not found")
	ErrSwapNotFound   = apierrors.New(apierrors.KindNotFound, "swap request not found")
	ErrReportNotFound = apierrors.New(apierrors.KindNotFound, "report not found")
)

// Authentication
var (
	ErrInvalidCredentials = apierrors.New(apierrors.KindInvalidCredentials, "invalid email or password")
	ErrAccountSuspended   = apierrors.New(apierrors.KindForbidden, "your account has been suspended")
	ErrEmailTaken         = apierrors.New(apierrors.KindConflict, "user with this email already exists")
	ErrPasswordTooShort   = apierrors.New(apierrors.KindValidation, "password too short")
	ErrRegisterFields     = apierrors.New(apierrors.KindValidation, "name, email, and password are required")
)

// Swap lifecycle
var (
	ErrNotSwapParticipant = apierrors.New(apierrors.KindForbidden, "only the requester or the target can update this swap")
	ErrNotSwapRequester   = apierrors.New(apierrors.KindForbidden, "only the requester can delete a swap request")
	ErrSwapNotPending     = apierrors.New(apierrors.KindInvalidState, "can only delete pending requests")
	ErrInvalidSwapStatus  = apierrors.New(apierrors.KindValidation, "status must be one of accepted, rejected, completed, cancelled")
	ErrSkillsRequired     = apierrors.New(apierrors.KindValidation, "skill offered and skill wanted are required")
	ErrSelfSwap           = apierrors.New(apierrors.KindValidation, "cannot send a swap request to yourself")
)

// Feedback
var (
	ErrInvalidRating          = apierrors.New(apierrors.KindValidation, "rating must be between 1 and 5")
	ErrReviewerNotParticipant = apierrors.New(apierrors.KindForbidden, "only participants of the swap can leave feedback")
	ErrRevieweeNotCounterpart = apierrors.New(apierrors.KindValidation, "reviewee must be the other participant of the swap")
)

// Moderation
var (
	ErrReasonRequired      = apierrors.New(apierrors.KindValidation, "reason is required")
	ErrSelfReport          = apierrors.New(apierrors.KindValidation, "cannot report yourself")
	ErrInvalidReportStatus = apierrors.New(apierrors.KindValidation, "status must be one of pending, resolved, dismissed")
	ErrProtectedUser       = apierrors.New(apierrors.KindForbidden, "this account is protected")
)

// Broadcast
var (
	ErrMessageFieldsRequired = apierrors.New(apierrors.KindValidation, "title and content are required")
	ErrInvalidMessageType    = apierrors.New(apierrors.KindValidation, "message type must be one of announcement, maintenance, update")
)
