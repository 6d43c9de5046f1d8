package constant

// Session and expo lifecycles share the same shape. A session governs a
// waiting queue, an expo governs a catalog; both are read-only after ended.
const (
	EventStatusSetup  = "setup"
	EventStatusLive   = "live"
	EventStatusPaused = "paused"
	EventStatusEnded  = "ended"
)

const (
	EntryStatusWaiting    = "waiting"
	EntryStatusInProgress = "in_progress"
	EntryStatusCompleted  = "completed"
	EntryStatusCanceled   = "canceled"
)

const (
	LinkStatusSent     = "sent"
	LinkStatusPaid     = "paid"
	LinkStatusCanceled = "canceled"
	LinkStatusExpired  = "expired"
)

const (
	SaleSourceOnlineCheckout = "online_checkout"
	SaleSourceWalkup         = "walkup"
)

const (
	PaymentMethodCard  = "card"
	PaymentMethodCash  = "cash"
	PaymentMethodOther = "other"
)
