package services_test

import (
	"testing"
	"time"

	"github.com/tomatoplanet/leads-go/services"
)

func TestFeedDelivers(t *testing.T) {
	feed := services.NewFeed()
	ch, cancel := feed.Subscribe()
	defer cancel()

	event := services.ApplicationEvent{Kind: "brand", Reference: "ref-1", ReceivedAt: time.Now()}
	feed.Publish(event)

	select {
	case got := <-ch:
		if got.Reference != "ref-1" {
			t.Errorf("reference = %q", got.Reference)
		}
	case <-time.After(time.Second):
		t.Fatal("event never arrived")
	}
}

func TestFeedCancelStopsDelivery(t *testing.T) {
	feed := services.NewFeed()
	ch, cancel := feed.Subscribe()
	cancel()

	// publishing after cancel must not panic on the closed channel
	feed.Publish(services.ApplicationEvent{Kind: "creator"})

	if _, open := <-ch; open {
		t.Error("channel should be closed after cancel")
	}

	// cancel is safe to call twice
	cancel()
}

func TestFeedSlowSubscriberMissesEvents(t *testing.T) {
	feed := services.NewFeed()
	ch, cancel := feed.Subscribe()
	defer cancel()

	// fill the buffer and keep going; Publish must never block
	for i := 0; i < 100; i++ {
		feed.Publish(services.ApplicationEvent{Kind: "contact"})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
		default:
			if received == 0 || received > 16 {
				t.Errorf("received %d events, want 1..16", received)
			}
			return
		}
	}
}
