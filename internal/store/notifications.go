package store

import (
	"sync"

	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
)

// NotificationKind names one unread counter
type NotificationKind int

const (
	UnreadAnnouncements NotificationKind = iota
	UnreadConversations
	UnreadForumThreadPosts
	UnreadTitleGroupComments
	UnreadTorrentRequestComments
	UnreadStaffPMs
)

// AllNotificationKinds returns every counter in display order
func AllNotificationKinds() []NotificationKind {
	return []NotificationKind{
		UnreadAnnouncements,
		UnreadConversations,
		UnreadForumThreadPosts,
		UnreadTitleGroupComments,
		UnreadTorrentRequestComments,
		UnreadStaffPMs,
	}
}

// String returns the wire name of the counter
func (k NotificationKind) String() string {
	switch k {
	case UnreadAnnouncements:
		return "unread_announcements_amount"
	case UnreadConversations:
		return "unread_conversations_amount"
	case UnreadForumThreadPosts:
		return "unread_notifications_amount_forum_thread_posts"
	case UnreadTitleGroupComments:
		return "unread_notifications_amount_title_group_comments"
	case UnreadTorrentRequestComments:
		return "unread_notifications_amount_torrent_request_comments"
	case UnreadStaffPMs:
		return "unread_staff_pms_amount"
	default:
		return "unknown"
	}
}

// NotificationCounts is the set of unread counters as the backend reports them.
// Counters are independent and never negative.
type NotificationCounts struct {
	UnreadAnnouncements          int `json:"unread_announcements_amount"`
	UnreadConversations          int `json:"unread_conversations_amount"`
	UnreadForumThreadPosts       int `json:"unread_notifications_amount_forum_thread_posts"`
	UnreadTitleGroupComments     int `json:"unread_notifications_amount_title_group_comments"`
	UnreadTorrentRequestComments int `json:"unread_notifications_amount_torrent_request_comments"`
	UnreadStaffPMs               int `json:"unread_staff_pms_amount"`
}

func (c *NotificationCounts) field(kind NotificationKind) *int {
	switch kind {
	case UnreadAnnouncements:
		return &c.UnreadAnnouncements
	case UnreadConversations:
		return &c.UnreadConversations
	case UnreadForumThreadPosts:
		return &c.UnreadForumThreadPosts
	case UnreadTitleGroupComments:
		return &c.UnreadTitleGroupComments
	case UnreadTorrentRequestComments:
		return &c.UnreadTorrentRequestComments
	case UnreadStaffPMs:
		return &c.UnreadStaffPMs
	default:
		return nil
	}
}

// Get returns one counter, 0 for an unknown kind
func (c NotificationCounts) Get(kind NotificationKind) int {
	if p := c.field(kind); p != nil {
		return *p
	}
	return 0
}

// Total returns the sum of all counters
func (c NotificationCounts) Total() int {
	return c.UnreadAnnouncements + c.UnreadConversations + c.UnreadForumThreadPosts +
		c.UnreadTitleGroupComments + c.UnreadTorrentRequestComments + c.UnreadStaffPMs
}

func (c NotificationCounts) clamped() NotificationCounts {
	for _, kind := range AllNotificationKinds() {
		if p := c.field(kind); *p < 0 {
			*p = 0
		}
	}
	return c
}

// Notifications holds the unread counters
type Notifications struct {
	counts   NotificationCounts
	mu       sync.RWMutex
	onUpdate func(NotificationCounts)
	log      logger.Logger
}

// NewNotifications creates a container with every counter at zero
func NewNotifications(log logger.Logger) *Notifications {
	return &Notifications{log: logger.OrNop(log)}
}

// SetUpdateCallback sets the function called with the new counters after
// every change
func (n *Notifications) SetUpdateCallback(callback func(NotificationCounts)) {
	n.mu.Lock()
	n.onUpdate = callback
	n.mu.Unlock()
}

// Counts returns a snapshot of all counters
func (n *Notifications) Counts() NotificationCounts {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.counts
}

// Get returns a single counter, 0 for an unknown kind
func (n *Notifications) Get(kind NotificationKind) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.counts.Get(kind)
}

// Set updates one counter. Negative values are stored as 0.
func (n *Notifications) Set(kind NotificationKind, value int) {
	if value < 0 {
		value = 0
	}

	n.mu.Lock()
	p := n.counts.field(kind)
	if p == nil {
		n.mu.Unlock()
		n.log.Warn("unknown notification counter", logger.Int("kind", int(kind)))
		return
	}
	*p = value
	counts, callback := n.counts, n.onUpdate
	n.mu.Unlock()

	n.log.Debug("notification counter set", logger.String("counter", kind.String()), logger.Int("value", value))
	notify(callback, counts)
}

// Replace overwrites every counter
func (n *Notifications) Replace(counts NotificationCounts) {
	n.mu.Lock()
	n.counts = counts.clamped()
	counts, callback := n.counts, n.onUpdate
	n.mu.Unlock()

	n.log.Debug("notification counters replaced", logger.Int("total", counts.Total()))
	notify(callback, counts)
}

// Reset sets every counter back to zero
func (n *Notifications) Reset() {
	n.Replace(NotificationCounts{})
}

func notify[T any](callback func(T), value T) {
	if callback != nil {
		callback(value)
	}
}
