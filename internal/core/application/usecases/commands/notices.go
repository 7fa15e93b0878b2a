package commands

import (
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
)

// dispatch hands planned notices to the dispatcher after commit. suppressEmail keeps
// in-app and push delivery and drops the email channel.
func dispatch(d ports.NoticeDispatcher, notices []notification.Notice, suppressEmail bool) {
	if len(notices) == 0 {
		return
	}
	if suppressEmail {
		notices = notification.WithoutEmail(notices)
	}
	d.Dispatch(notices...)
}
