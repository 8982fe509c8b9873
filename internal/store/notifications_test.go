package store_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-tracker/arcadia-ui/internal/store"
)

func TestNotifications_DefaultsToZero(t *testing.T) {
	t.Parallel()

	n := store.NewNotifications(nil)

	assert.Equal(t, store.NotificationCounts{}, n.Counts())
	for _, kind := range store.AllNotificationKinds() {
		assert.Zero(t, n.Get(kind), kind.String())
	}
}

func TestNotifications_SetIsIndependent(t *testing.T) {
	t.Parallel()

	n := store.NewNotifications(nil)
	n.Set(store.UnreadConversations, 3)
	n.Set(store.UnreadStaffPMs, 1)

	counts := n.Counts()
	assert.Equal(t, 3, counts.UnreadConversations)
	assert.Equal(t, 1, counts.UnreadStaffPMs)
	assert.Zero(t, counts.UnreadAnnouncements)
	assert.Equal(t, 4, counts.Total())
}

func TestNotifications_NegativeClampsToZero(t *testing.T) {
	t.Parallel()

	n := store.NewNotifications(nil)
	n.Set(store.UnreadAnnouncements, 5)
	n.Set(store.UnreadAnnouncements, -2)
	assert.Zero(t, n.Get(store.UnreadAnnouncements))

	n.Replace(store.NotificationCounts{UnreadForumThreadPosts: -1, UnreadTitleGroupComments: 7})
	assert.Zero(t, n.Get(store.UnreadForumThreadPosts))
	assert.Equal(t, 7, n.Get(store.UnreadTitleGroupComments))
}

func TestNotifications_UnknownKindIgnored(t *testing.T) {
	t.Parallel()

	n := store.NewNotifications(nil)
	n.Set(store.NotificationKind(99), 4)

	assert.Zero(t, n.Counts().Total())
	assert.Zero(t, n.Get(store.NotificationKind(99)))
	assert.Equal(t, "unknown", store.NotificationKind(99).String())
}

func TestNotifications_ResetAndCallback(t *testing.T) {
	t.Parallel()

	n := store.NewNotifications(nil)
	var seen []int
	n.SetUpdateCallback(func(c store.NotificationCounts) { seen = append(seen, c.Total()) })

	n.Set(store.UnreadTorrentRequestComments, 2)
	n.Set(store.UnreadConversations, 1)
	n.Reset()

	assert.Equal(t, []int{2, 3, 0}, seen)
	assert.Equal(t, store.NotificationCounts{}, n.Counts())
}

func TestNotificationCounts_WireNames(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(store.NotificationCounts{UnreadStaffPMs: 2})
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(store.AllNotificationKinds()))
	for _, kind := range store.AllNotificationKinds() {
		assert.Contains(t, decoded, kind.String())
	}
	assert.Equal(t, 2, decoded["unread_staff_pms_amount"])
}

func TestNotifications_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	n := store.NewNotifications(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n.Set(store.UnreadAnnouncements, i)
			_ = n.Counts()
		}(i)
	}
	wg.Wait()

	assert.GreaterOrEqual(t, n.Get(store.UnreadAnnouncements), 0)
}
