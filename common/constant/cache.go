package constant

import "time"

const (
	EachItemRemainingKey = "expo:item:%d:remaining"
	QueueEmailLock       = "queue:email_lock:%d:%s"
)

const (
	QueueEmailLockDefaultTTL = 1 * time.Minute
)
