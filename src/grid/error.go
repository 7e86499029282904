package grid

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrTransactionFailed = errors.New("transaction failed")
	ErrCorrelationFailed = errors.New("correlation failed")

	ErrActivationNotConfigured = errors.New("activation client not configured")
)

var (
	ErrTwinNotFound       = fmt.Errorf("twin %w", ErrNotFound)
	ErrFarmNotFound       = fmt.Errorf("farm %w", ErrNotFound)
	ErrNodeNotFound       = fmt.Errorf("node %w", ErrNotFound)
	ErrContractNotFound   = fmt.Errorf("contract %w", ErrNotFound)
	ErrDeploymentNotFound = fmt.Errorf("deployment %w", ErrNotFound)
	ErrRefundNotFound     = fmt.Errorf("refund transaction %w", ErrNotFound)
)

// Kinds of TransactionError
var (
	ErrTwinCreationFailed                 = errors.New("twin creation failed")
	ErrTwinUpdateFailed                   = errors.New("twin update failed")
	ErrAcceptingTermsAndConditionsFailed  = errors.New("accepting terms and conditions failed")
	ErrFarmCreationFailed                 = errors.New("farm creation failed")
	ErrNodeCreationFailed                 = errors.New("node creation failed")
	ErrNodeUpdateFailed                   = errors.New("node update failed")
	ErrNodeUptimeReportFailed             = errors.New("node uptime report failed")
	ErrNodeCertificationFailed            = errors.New("setting node certification failed")
	ErrContractCreationFailed             = errors.New("contract creation failed")
	ErrContractUpdateFailed               = errors.New("contract update failed")
	ErrContractCancelFailed               = errors.New("contract cancel failed")
	ErrCapacityReservationCreationFailed  = errors.New("capacity reservation contract creation failed")
	ErrCapacityReservationUpdateFailed    = errors.New("capacity reservation contract update failed")
	ErrConsumptionReportFailed            = errors.New("consumption report failed")
	ErrDeploymentCreationFailed           = errors.New("deployment creation failed")
	ErrDeploymentUpdateFailed             = errors.New("deployment update failed")
	ErrDeploymentCancelFailed             = errors.New("deployment cancel failed")
	ErrRefundTransactionFailed            = errors.New("refund transaction creation or adding signature failed")
	ErrSetRefundTransactionExecutedFailed = errors.New("setting refund transaction executed failed")
	ErrProposeOrVoteMintTransactionFailed = errors.New("proposing or voting mint transaction failed")
)

const msgNoIdAfterCreation = "failed to get id after creation"

// TransactionError is returned when a submitted call didn't succeed on chain,
// or when the id of the entity it created couldn't be resolved
type TransactionError struct {
	// One of the Err*Failed kinds
	Kind error

	// Message reported by the chain, e.g. SmartContractModule.NodeNotExists
	Message string

	// Cause, if any
	Err error
}

func (self *TransactionError) Error() string {
	if self.Message == "" {
		return self.Kind.Error()
	}
	return self.Kind.Error() + ": " + self.Message
}

func (self *TransactionError) Is(target error) bool {
	return target == ErrTransactionFailed || target == self.Kind
}

func (self *TransactionError) Unwrap() error {
	return self.Err
}

func correlationError(kind error) *TransactionError {
	return &TransactionError{Kind: kind, Message: msgNoIdAfterCreation, Err: ErrCorrelationFailed}
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
