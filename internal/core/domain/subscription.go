package domain

// MinSubscriptionInterval is the shortest allowed payment interval, in seconds.
const MinSubscriptionInterval = 60

// Subscription is a recurring payment agreement between a sender and a
// receiver, at most one per ordered pair. Due-ness is evaluated at read time
// and never stored.
type Subscription struct {
	Sender          Address `json:"sender"`
	Receiver        Address `json:"receiver"`
	SenderName      string  `json:"sender_name"`
	ReceiverName    string  `json:"receiver_name"`
	Amount          uint64  `json:"amount"`
	IntervalSeconds int64   `json:"interval_seconds"`
	LastExecuted    int64   `json:"last_executed"`
	NextDue         int64   `json:"next_due"`
	IsActive        bool    `json:"is_active"`
	Authority       Address `json:"authority"`
	TotalPaid       uint64  `json:"total_paid"`
	ExecutionCount  uint64  `json:"execution_count"`
}

// IsDue reports whether the subscription is active and its next payment
// timestamp has passed.
func (s *Subscription) IsDue(now int64) bool {
	return s.IsActive && s.NextDue <= now
}

// OverdueSecs is how far past due the subscription is. Zero when not due.
func (s *Subscription) OverdueSecs(now int64) int64 {
	if !s.IsDue(now) {
		return 0
	}
	return now - s.NextDue
}
