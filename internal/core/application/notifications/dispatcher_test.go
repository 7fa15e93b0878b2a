package notifications_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/core/application/notifications"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDeliverer struct {
	mu      sync.Mutex
	notices []notification.Notice
	digests []notification.Digest

	// started receives once per delivery; release gates its completion when set.
	started chan struct{}
	release chan struct{}
}

func (d *recordingDeliverer) Deliver(_ context.Context, n notification.Notice) {
	d.wait()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, n)
}

func (d *recordingDeliverer) DeliverDigest(_ context.Context, dg notification.Digest) {
	d.wait()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.digests = append(d.digests, dg)
}

func (d *recordingDeliverer) wait() {
	if d.started != nil {
		d.started <- struct{}{}
	}
	if d.release != nil {
		<-d.release
	}
}

func (d *recordingDeliverer) counts() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.notices), len(d.digests)
}

func notice(message string) notification.Notice {
	return notification.Notice{
		RecipientIDs: []kernel.UUID{kernel.NewUUID()},
		OrderID:      kernel.NewUUID(),
		Message:      message,
		Category:     notification.CategoryInfo,
	}
}

func TestAsyncDispatcher_DeliversEverythingBeforeClose(t *testing.T) {
	deliverer := &recordingDeliverer{}
	d := notifications.NewAsyncDispatcher(deliverer, 3, 16, discardLogger())

	d.Dispatch(notice("one"), notice("two"), notice("three"))
	d.DispatchDigests(notification.Digest{RecipientID: kernel.NewUUID(), OrderIDs: []kernel.UUID{kernel.NewUUID()}})

	require.NoError(t, d.Close(context.Background()))

	notices, digests := deliverer.counts()
	assert.Equal(t, 3, notices)
	assert.Equal(t, 1, digests)
}

func TestAsyncDispatcher_DropsWhenQueueIsFull(t *testing.T) {
	deliverer := &recordingDeliverer{
		started: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	d := notifications.NewAsyncDispatcher(deliverer, 1, 1, discardLogger())

	d.Dispatch(notice("in flight"))
	select {
	case <-deliverer.started:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not pick up the first notice")
	}

	d.Dispatch(notice("queued"), notice("dropped"))
	close(deliverer.release)

	require.NoError(t, d.Close(context.Background()))

	notices, _ := deliverer.counts()
	assert.Equal(t, 2, notices)
	assert.Equal(t, int64(1), d.Dropped())
}

func TestAsyncDispatcher_WaitsBrieflyForRoom(t *testing.T) {
	deliverer := &recordingDeliverer{
		started: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	d := notifications.NewAsyncDispatcher(deliverer, 1, 1, discardLogger())

	d.Dispatch(notice("in flight"))
	select {
	case <-deliverer.started:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not pick up the first notice")
	}
	d.Dispatch(notice("queued"))

	go func() {
		time.Sleep(10 * time.Millisecond)
		close(deliverer.release)
	}()
	d.Dispatch(notice("waits for a slot"))

	require.NoError(t, d.Close(context.Background()))

	notices, _ := deliverer.counts()
	assert.Equal(t, 3, notices)
	assert.Zero(t, d.Dropped())
}

func TestAsyncDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	deliverer := &recordingDeliverer{}
	d := notifications.NewAsyncDispatcher(deliverer, 1, 4, discardLogger())
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Dispatch(notice("late"))
	})
	require.NoError(t, d.Close(context.Background()))

	notices, _ := deliverer.counts()
	assert.Zero(t, notices)
	assert.Equal(t, int64(1), d.Dropped())
}

func TestAsyncDispatcher_CloseHonoursContext(t *testing.T) {
	deliverer := &recordingDeliverer{release: make(chan struct{})}
	d := notifications.NewAsyncDispatcher(deliverer, 1, 4, discardLogger())
	d.Dispatch(notice("stuck"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)
	close(deliverer.release)
}
