package services

import "fmt"

// Saga steps of order creation and confirmation, used in logs and errors.
const (
	StepGenerateCode     = "generate_code"
	StepUploadFile       = "upload_file"
	StepInsertOrder      = "insert_order"
	StepCreateCheckout   = "create_checkout"
	StepAttachPaymentRef = "attach_payment_ref"
	StepLookupOrder      = "lookup_order"
	StepMarkPaid         = "mark_paid"
)

// ValidationError is a client input problem; nothing has been written when
// it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StepError is a dependent-service failure at a named step. Earlier steps
// are not rolled back.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
