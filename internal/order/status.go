package order

// Status is a fulfillment milestone. Orders only ever move forward through
// the progression; there is no cancelled or failed status.
type Status string

const (
	StatusPlaced    Status = "PLACED"
	StatusConfirmed Status = "CONFIRMED"
	StatusPreparing Status = "PREPARING"
	StatusOnTheWay  Status = "ON_THE_WAY"
	StatusDelivered Status = "DELIVERED"
)

var progression = []Status{
	StatusPlaced,
	StatusConfirmed,
	StatusPreparing,
	StatusOnTheWay,
	StatusDelivered,
}

var validNext = map[Status]map[Status]bool{
	StatusPlaced:    {StatusConfirmed: true},
	StatusConfirmed: {StatusPreparing: true},
	StatusPreparing: {StatusOnTheWay: true},
	StatusOnTheWay:  {StatusDelivered: true},
	StatusDelivered: {},
}

// CanTransition reports whether from may move directly to to.
func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// Next returns the status one step forward. ok is false at StatusDelivered
// and for unknown statuses.
func (s Status) Next() (next Status, ok bool) {
	for i, st := range progression {
		if st == s && i+1 < len(progression) {
			return progression[i+1], true
		}
	}
	return s, false
}

// IsTerminal reports whether the order has reached its final status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

func (s Status) String() string {
	return string(s)
}
