package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const (
	ChannelInApp = "in-app"
	ChannelPush  = "push"
	ChannelEmail = "email"

	// recentChanges is how many audit entries an update email lists.
	recentChanges = 5

	defaultParallelism = 8
)

// Stores groups the repositories the fanout reads from and writes to.
// They are used outside of any unit of work; every delivery commits on its own.
type Stores struct {
	Inbox         ports.NotificationRepository
	Subscriptions ports.PushSubscriptionRepository
	Users         ports.UserRepository
	Orders        ports.OrderRepository
	Audit         ports.AuditLogRepository
}

// Sinks are the outbound transports.
type Sinks struct {
	Push   ports.PushSender
	Mailer ports.Mailer
}

// Fanout delivers a notice to each recipient over in-app, push and email.
// Recipients are served in parallel, bounded by the configured parallelism.
// The in-app entry is stored first; push and email then go out concurrently.
type Fanout struct {
	stores      Stores
	sinks       Sinks
	renderer    *Renderer
	logger      *slog.Logger
	parallelism int
	now         func() time.Time
}

func NewFanout(stores Stores, sinks Sinks, renderer *Renderer, parallelism int, logger *slog.Logger) (*Fanout, error) {
	var errList []error
	if stores.Inbox == nil {
		errList = append(errList, errs.NewValueIsRequiredError("notification repository"))
	}
	if stores.Subscriptions == nil {
		errList = append(errList, errs.NewValueIsRequiredError("push subscription repository"))
	}
	if stores.Users == nil {
		errList = append(errList, errs.NewValueIsRequiredError("user repository"))
	}
	if stores.Orders == nil {
		errList = append(errList, errs.NewValueIsRequiredError("order repository"))
	}
	if stores.Audit == nil {
		errList = append(errList, errs.NewValueIsRequiredError("audit log repository"))
	}
	if sinks.Push == nil {
		errList = append(errList, errs.NewValueIsRequiredError("push sender"))
	}
	if sinks.Mailer == nil {
		errList = append(errList, errs.NewValueIsRequiredError("mailer"))
	}
	if renderer == nil {
		errList = append(errList, errs.NewValueIsRequiredError("renderer"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	if parallelism <= 0 {
		parallelism = defaultParallelism
	}

	return &Fanout{
		stores:      stores,
		sinks:       sinks,
		renderer:    renderer,
		logger:      logger.With("component", "NotificationFanout"),
		parallelism: parallelism,
		now:         time.Now,
	}, nil
}

// Deliver fans one notice out to its recipients. It returns once every channel of
// every recipient has been attempted.
func (f *Fanout) Deliver(ctx context.Context, notice notification.Notice) {
	recipients := kernel.UniqueUUIDs(notice.RecipientIDs)
	if len(recipients) == 0 {
		return
	}

	profiles, err := f.profiles(ctx, recipients)
	if err != nil {
		f.logger.ErrorContext(ctx, "failed to load recipients, email is skipped",
			"order_id", notice.OrderID.String(), "error", err)
	}

	var email *NoticeEmail
	if notice.Email != notification.EmailNone && anyHasEmail(profiles) {
		content, contentErr := f.noticeContent(ctx, notice)
		if contentErr != nil {
			f.logger.ErrorContext(ctx, "failed to prepare email content",
				"order_id", notice.OrderID.String(), "error", contentErr)
		} else {
			email = &content
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(f.parallelism)
	for _, id := range recipients {
		profile, known := profiles[id]
		g.Go(func() error {
			f.deliverInApp(ctx, id, notice)

			var channels errgroup.Group
			channels.Go(func() error {
				f.deliverPush(ctx, id, notice)
				return nil
			})
			if known && notice.Email != notification.EmailNone && profile.HasEmail() {
				channels.Go(func() error {
					f.deliverEmail(ctx, profile, notice.Email, email)
					return nil
				})
			}
			return channels.Wait()
		})
	}
	_ = g.Wait()
}

// DeliverDigest sends one email listing every order of the digest.
// Recipients without an address get nothing.
func (f *Fanout) DeliverDigest(ctx context.Context, digest notification.Digest) {
	recipient, err := f.stores.Users.Get(ctx, digest.RecipientID)
	if err != nil {
		f.fail(ctx, ChannelEmail, digest.RecipientID, err)
		return
	}
	if !recipient.HasEmail() || len(digest.OrderIDs) == 0 {
		return
	}

	views := make([]OrderView, 0, len(digest.OrderIDs))
	for _, id := range digest.OrderIDs {
		o, getErr := f.stores.Orders.Get(ctx, id)
		if getErr != nil {
			f.fail(ctx, ChannelEmail, digest.RecipientID, fmt.Errorf("load order %s: %w", id, getErr))
			return
		}
		view, viewErr := f.orderView(ctx, o)
		if viewErr != nil {
			f.fail(ctx, ChannelEmail, digest.RecipientID, viewErr)
			return
		}
		views = append(views, view)
	}

	subject, body, err := f.renderer.RenderDigest(DigestEmail{RecipientName: recipient.Username(), Orders: views})
	if err != nil {
		f.fail(ctx, ChannelEmail, digest.RecipientID, err)
		return
	}

	if err = f.sinks.Mailer.Send(ctx, ports.Email{To: recipient.Email(), Subject: subject, HTML: body}); err != nil {
		f.fail(ctx, ChannelEmail, digest.RecipientID, err)
		return
	}

	f.logger.InfoContext(ctx, "digest sent", "recipient_id", digest.RecipientID.String(), "orders", len(views))
}

func (f *Fanout) deliverInApp(ctx context.Context, recipientID kernel.UUID, notice notification.Notice) {
	var orderID *kernel.UUID
	if notice.OrderID.Validate() == nil {
		id := notice.OrderID
		orderID = &id
	}

	n, err := notification.NewNotification(recipientID, orderID, notice.Message, notice.Category, f.now())
	if err != nil {
		f.fail(ctx, ChannelInApp, recipientID, err)
		return
	}
	if err = f.stores.Inbox.Add(ctx, n); err != nil {
		f.fail(ctx, ChannelInApp, recipientID, err)
	}
}

// deliverPush sends to every live subscription of the recipient. Expired subscriptions
// and endpoints reported gone are pruned instead of retried.
func (f *Fanout) deliverPush(ctx context.Context, recipientID kernel.UUID, notice notification.Notice) {
	subs, err := f.stores.Subscriptions.ListFor(ctx, recipientID)
	if err != nil {
		f.fail(ctx, ChannelPush, recipientID, err)
		return
	}

	msg := ports.PushMessage{
		Title: pushTitle(notice.Category),
		Body:  notice.Message,
		URL:   "/orders/" + notice.OrderID.String(),
	}

	now := f.now()
	for _, sub := range subs {
		if sub.IsExpired(now) {
			f.prune(ctx, sub)
			continue
		}

		sendErr := f.sinks.Push.Send(ctx, sub, msg)
		switch {
		case sendErr == nil:
		case errors.Is(sendErr, ports.ErrSubscriptionGone):
			f.prune(ctx, sub)
		default:
			f.fail(ctx, ChannelPush, recipientID, sendErr)
		}
	}
}

func (f *Fanout) deliverEmail(ctx context.Context, recipient user.User, kind notification.EmailKind, content *NoticeEmail) {
	if content == nil {
		f.fail(ctx, ChannelEmail, recipient.ID(), errors.New("email content is unavailable"))
		return
	}

	data := *content
	data.RecipientName = recipient.Username()

	subject, body, err := f.renderer.RenderNotice(kind, data)
	if err != nil {
		f.fail(ctx, ChannelEmail, recipient.ID(), err)
		return
	}

	if err = f.sinks.Mailer.Send(ctx, ports.Email{To: recipient.Email(), Subject: subject, HTML: body}); err != nil {
		f.fail(ctx, ChannelEmail, recipient.ID(), err)
	}
}

// noticeContent loads what every recipient's email shares: the order and, for
// update emails, its most recent changes.
func (f *Fanout) noticeContent(ctx context.Context, notice notification.Notice) (NoticeEmail, error) {
	o, err := f.stores.Orders.Get(ctx, notice.OrderID)
	if err != nil {
		return NoticeEmail{}, fmt.Errorf("load order %s: %w", notice.OrderID, err)
	}

	view, err := f.orderView(ctx, o)
	if err != nil {
		return NoticeEmail{}, err
	}

	content := NoticeEmail{Message: notice.Message, Order: view}
	if notice.Email == notification.EmailOrderCreated {
		return content, nil
	}

	records, err := f.stores.Audit.ListFor(ctx, o.ID(), recentChanges)
	if err != nil {
		return NoticeEmail{}, fmt.Errorf("load recent changes of %s: %w", o.ID(), err)
	}

	authorIDs := make([]kernel.UUID, 0, len(records))
	for _, r := range records {
		authorIDs = append(authorIDs, r.ActorID())
	}
	authors, err := f.profiles(ctx, authorIDs)
	if err != nil {
		return NoticeEmail{}, err
	}

	for _, r := range records {
		content.Changes = append(content.Changes, ChangeView{
			At:     r.CreatedAt(),
			Author: authors[r.ActorID()].Username(),
			Text:   r.NewValue(),
		})
	}
	return content, nil
}

func (f *Fanout) orderView(ctx context.Context, o *order.Order) (OrderView, error) {
	assignees, err := f.profiles(ctx, o.AssigneeIDs())
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		Title:       o.Title(),
		City:        o.City().String(),
		Status:      o.Status().String(),
		Description: o.Description(),
	}
	for _, item := range o.Items() {
		view.Items = append(view.Items, ItemView{Name: item.Name(), Quantity: item.Quantity()})
	}
	for _, id := range o.AssigneeIDs() {
		if u, ok := assignees[id]; ok {
			view.Assignees = append(view.Assignees, u.Username())
		}
	}
	return view, nil
}

func (f *Fanout) profiles(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]user.User, error) {
	found := make(map[kernel.UUID]user.User, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	users, err := f.stores.Users.GetMany(ctx, kernel.UniqueUUIDs(ids))
	if err != nil {
		return found, err
	}
	for _, u := range users {
		found[u.ID()] = u
	}
	return found, nil
}

func (f *Fanout) prune(ctx context.Context, sub notification.PushSubscription) {
	if err := f.stores.Subscriptions.Prune(ctx, sub.ID()); err != nil {
		f.fail(ctx, ChannelPush, sub.UserID(), fmt.Errorf("prune subscription %s: %w", sub.ID(), err))
		return
	}
	f.logger.InfoContext(ctx, "push subscription pruned",
		"subscription_id", sub.ID().String(), "user_id", sub.UserID().String())
}

func (f *Fanout) fail(ctx context.Context, channel string, recipientID kernel.UUID, cause error) {
	err := errs.NewNotificationDeliveryError(channel, recipientID.String(), cause)
	f.logger.ErrorContext(ctx, "notification delivery failed",
		"channel", channel,
		"recipient_id", recipientID.String(),
		"error", err)
}

func anyHasEmail(profiles map[kernel.UUID]user.User) bool {
	for _, u := range profiles {
		if u.HasEmail() {
			return true
		}
	}
	return false
}

func pushTitle(c notification.Category) string {
	switch c {
	case notification.CategoryAlert:
		return "New order"
	case notification.CategorySuccess:
		return "Order completed"
	case notification.CategoryInfo, notification.CategoryUnknown:
	}
	return "Order update"
}
