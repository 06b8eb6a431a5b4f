package hub

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesOnlyThatGame(t *testing.T) {
	h := New()
	a := make(Client, 1)
	b := make(Client, 1)
	h.Subscribe("game-a", a)
	h.Subscribe("game-b", b)

	h.Publish("game-a", "review.submitted", map[string]string{"reviewerId": "r1"})

	require.Len(t, a, 1)
	assert.Len(t, b, 0)

	var ev Event
	require.NoError(t, json.Unmarshal(<-a, &ev))
	assert.Equal(t, "review.submitted", ev.Type)
	assert.Equal(t, map[string]interface{}{"reviewerId": "r1"}, ev.Payload)
}

func TestPublishDoesNotBlockOnFullClient(t *testing.T) {
	h := New()
	c := make(Client) // unbuffered, nobody reading
	h.Subscribe("g", c)

	h.Publish("g", "review.retracted", nil)
	// reaching this line is the assertion
}

func TestUnsubscribeClosesAndCleansUp(t *testing.T) {
	h := New()
	c := make(Client, 1)
	h.Subscribe("g", c)
	assert.Equal(t, 1, h.Subscribers("g"))

	h.Unsubscribe("g", c)
	_, open := <-c
	assert.False(t, open)
	assert.Equal(t, 0, h.Subscribers("g"))

	h.Unsubscribe("g", c) // second call is a no-op
}

func TestCloseAllEndsEveryStream(t *testing.T) {
	h := New()
	a := make(Client, 1)
	b := make(Client, 1)
	h.Subscribe("game-a", a)
	h.Subscribe("game-b", b)
	h.Publish("game-a", "review.submitted", nil)

	h.CloseAll()

	_, ok := <-a
	assert.True(t, ok, "buffered event is still delivered")
	_, ok = <-a
	assert.False(t, ok)
	_, ok = <-b
	assert.False(t, ok)
	assert.Zero(t, h.Subscribers("game-a"))

	// Unsubscribing after CloseAll must not close the channel twice.
	assert.NotPanics(t, func() { h.Unsubscribe("game-a", a) })
}
