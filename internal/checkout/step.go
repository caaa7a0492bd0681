package checkout

// Step is one screen of the checkout flow.
type Step string

const (
	StepAddress Step = "ADDRESS"
	StepPayment Step = "PAYMENT"
	StepSuccess Step = "SUCCESS"
)

// IsTerminal reports whether the flow is finished.
func (s Step) IsTerminal() bool {
	return s == StepSuccess
}

// String representation (for logging)
func (s Step) String() string {
	return string(s)
}
