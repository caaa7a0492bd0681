package checkout

import "errors"

var (
	// ErrNoAddressSelected rejects confirming the address step without a
	// delivery address. The caller re-prompts; the step does not change.
	ErrNoAddressSelected = errors.New("no address selected")

	// ErrNoPaymentSelected rejects confirming the payment step without a
	// payment method.
	ErrNoPaymentSelected = errors.New("no payment method selected")

	// ErrProcessing rejects actions while a settlement is in flight.
	ErrProcessing = errors.New("payment is processing")

	// ErrSessionClosed rejects actions on a cancelled or discarded session.
	ErrSessionClosed = errors.New("checkout session discarded")

	// ErrTerminalStep rejects actions once the flow has succeeded.
	ErrTerminalStep = errors.New("checkout already completed")

	// ErrPaymentDeclined is recorded when the processor declines the
	// settlement. The session stays at the payment step.
	ErrPaymentDeclined = errors.New("payment declined")
)
