package constant

const (
	QueueStreamName = "spiriverse_queue_stream"
)

const (
	AllWildcard   = "events.>"
	LiveWildcard  = "events.live.>"
	ExpoWildcard  = "events.expo.>"
	EmailWildcard = "events.email.>"

	SubjectAdvanceQueue = "events.live.advance"
	SubjectSaleRecorded = "events.expo.sale_recorded"
	SubjectSendEmail    = "events.email.send"
)
