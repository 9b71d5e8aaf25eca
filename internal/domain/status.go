package domain

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusOnTheWay  Status = "on_the_way"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

// statusFlow is the linear fulfillment progression. Cancelled and rejected
// sit outside the flow as terminal escapes.
var statusFlow = []Status{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusOnTheWay,
	StatusDone,
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled || s == StatusRejected
}

// Next returns the following status in the fulfillment flow and false when
// the status is terminal or unknown.
func (s Status) Next() (Status, bool) {
	for i, st := range statusFlow {
		if st == s && i < len(statusFlow)-1 {
			return statusFlow[i+1], true
		}
	}
	return s, false
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}
