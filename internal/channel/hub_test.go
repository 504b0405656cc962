package channel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

func TestHubDeliversToListenersInOrder(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	var got []string
	hub.On(ports.MessageChangeMetadata, func(data interface{}) { got = append(got, "a:"+data.(string)) })
	hub.On(ports.MessageChangeMetadata, func(data interface{}) { got = append(got, "b:"+data.(string)) })
	hub.On(ports.MessageClosePlayer, func(interface{}) { got = append(got, "other") })

	hub.Send(ports.MessageChangeMetadata, "x")
	require.Equal(t, []string{"a:x", "b:x"}, got)
}

func TestHubForwardsSentMessagesOnly(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	var forwarded []string
	hub.SetForwarder(func(name string, _ interface{}) { forwarded = append(forwarded, name) })

	hub.Send(ports.MessageNextEpisode, nil)
	hub.Deliver(ports.MessageChangeMetadata, nil)
	require.Equal(t, []string{ports.MessageNextEpisode}, forwarded)
}

func TestHubUnsubscribe(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	calls := 0
	sub := hub.On("x", func(interface{}) { calls++ })
	require.Equal(t, 1, hub.Listeners("x"))

	sub.Unsubscribe()
	sub.Unsubscribe()
	hub.Send("x", nil)
	require.Equal(t, 0, calls)
	require.Equal(t, 0, hub.Listeners("x"))
}

func TestHubRecoversListenerPanics(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	reached := false
	hub.On("x", func(interface{}) { panic("boom") })
	hub.On("x", func(interface{}) { reached = true })

	require.NotPanics(t, func() { hub.Send("x", nil) })
	require.True(t, reached)
}
