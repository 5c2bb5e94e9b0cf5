package pubsub

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

const testTopic = Topic("test")

type testEvent struct {
	value int
}

func (e testEvent) GetTopic() Topic { return testTopic }

func TestPublishAndSubscribe(t *testing.T) {
	publisher := NewPublisher("test", log.NewNopLogger())
	require.NoError(t, publisher.Start())
	defer publisher.Stop()

	sub, err := publisher.NewSubscriber("client-1")
	require.NoError(t, err)

	var mtx sync.Mutex
	received := []int{}
	require.NoError(t, sub.Subscribe(testTopic, func(event Event) {
		mtx.Lock()
		received = append(received, event.(testEvent).value)
		mtx.Unlock()
	}))
	require.True(t, publisher.HasSubscribed("client-1", testTopic))

	publisher.Publish(testEvent{value: 7})
	publisher.Publish(testEvent{value: 8})
	sub.Wait()

	mtx.Lock()
	defer mtx.Unlock()
	require.ElementsMatch(t, []int{7, 8}, received)
}

func TestDuplicateClientID(t *testing.T) {
	publisher := NewPublisher("test", log.NewNopLogger())
	require.NoError(t, publisher.Start())
	defer publisher.Stop()

	_, err := publisher.NewSubscriber("client-1")
	require.NoError(t, err)
	_, err = publisher.NewSubscriber("client-1")
	require.Equal(t, ErrDuplicateClientID, err)
}

func TestSubscribeErrors(t *testing.T) {
	publisher := NewPublisher("test", log.NewNopLogger())
	require.NoError(t, publisher.Start())
	defer publisher.Stop()

	sub, err := publisher.NewSubscriber("client-1")
	require.NoError(t, err)

	require.Equal(t, ErrNilHandler, sub.Subscribe(testTopic, nil))
	require.NoError(t, sub.Subscribe(testTopic, func(Event) {}))
	require.Equal(t, ErrAlreadySubscribed, sub.Subscribe(testTopic, func(Event) {}))

	require.Equal(t, ErrSubscriptionNotFound, sub.Unsubscribe(Topic("other")))
	require.NoError(t, sub.Unsubscribe(testTopic))
	require.False(t, publisher.HasSubscribed("client-1", testTopic))
}

func TestUnsubscribedTopicNotDelivered(t *testing.T) {
	publisher := NewPublisher("test", log.NewNopLogger())
	require.NoError(t, publisher.Start())
	defer publisher.Stop()

	sub, err := publisher.NewSubscriber("client-1")
	require.NoError(t, err)

	delivered := make(chan struct{}, 1)
	require.NoError(t, sub.Subscribe(testTopic, func(Event) {
		delivered <- struct{}{}
	}))
	require.NoError(t, sub.Unsubscribe(testTopic))

	publisher.Publish(testEvent{value: 1})
	sub.Wait()
	select {
	case <-delivered:
		t.Fatal("event delivered after unsubscribe")
	default:
	}
}
