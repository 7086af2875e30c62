package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Receipt Business Rules (RCT) ----

func ErrReceiptNotFound() *AppError {
	return New("RCT_001", "Receipt not found", http.StatusNotFound)
}

func ErrDuplicateReference() *AppError {
	return New("RCT_002", "A receipt with this reference already exists", http.StatusConflict)
}

func ErrDuplicateChainTx() *AppError {
	return New("RCT_003", "A receipt for this (chain, transaction) pair already exists", http.StatusConflict)
}

func ErrInvalidStatusTransition() *AppError {
	return New("RCT_004", "Receipt status does not allow this operation", http.StatusConflict)
}

func ErrMissingBundleHash() *AppError {
	return New("RCT_005", "Receipt has no bundle hash to prove against", http.StatusConflict)
}

func ErrRefundOriginalNotFound() *AppError {
	return New("RCT_006", "Original receipt for refund not found", http.StatusNotFound)
}

// ---- Bundle & Integrity (BND) ----

func ErrInvalidFingerprint() *AppError {
	return New("BND_001", "Fingerprint must be a 0x-prefixed 32-byte hex string", http.StatusBadRequest)
}

func ErrBundleBuildFailure(err error) *AppError {
	return Wrap("BND_002", "Evidence bundle construction failed", http.StatusInternalServerError, err)
}

func ErrSigningFailure(err error) *AppError {
	return Wrap("BND_003", "Manifest signing failed", http.StatusInternalServerError, err)
}

// ---- Anchoring (ANC) ----

func ErrChainRequired() *AppError {
	return New("ANC_001", "Chain name required: project has no unambiguous chain configured", http.StatusBadRequest)
}

func ErrUnknownChain() *AppError {
	return New("ANC_002", "Chain is not configured for this project", http.StatusBadRequest)
}

func ErrTxDoesNotMatchBundleHash() *AppError {
	return New("ANC_003", "Transaction does not prove this receipt's bundle hash", http.StatusBadRequest)
}

func ErrAnchorLookupUnavailable(err error) *AppError {
	return Wrap("ANC_004", "Chain RPC unavailable for anchor verification", http.StatusServiceUnavailable, err)
}

func ErrAnchoringFailed(err error) *AppError {
	return Wrap("ANC_005", "Anchoring failed on every configured chain", http.StatusBadGateway, err)
}

func ErrMissingAnchorKey() *AppError {
	return New("ANC_006", "No anchoring private key configured for platform mode", http.StatusInternalServerError)
}

// ---- Compliance (CMP) ----

func ErrComplianceDenied(reason string) *AppError {
	msg := "Receipt denied by compliance policy"
	if reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, reason)
	}
	return New("CMP_001", msg, http.StatusUnprocessableEntity)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbiddenProject() *AppError {
	return New("AUTH_002", "Receipt belongs to a different project", http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrStorageFailure(err error) *AppError {
	return Wrap("SYS_002", "Artifact storage failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
