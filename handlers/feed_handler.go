package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tomatoplanet/leads-go/services"
	"github.com/tomatoplanet/leads-go/utils"
)

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const feedPingInterval = 30 * time.Second

type FeedHandler struct {
	feed *services.Feed
}

func NewFeedHandler(feed *services.Feed) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// Stream upgrades to a websocket and pushes one JSON event per incoming
// application until the client disconnects. The route sits behind JWT auth.
func (h *FeedHandler) Stream(c *gin.Context) {
	conn, err := feedUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Log.Warn("feed upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	events, cancel := h.feed.Subscribe()
	defer cancel()

	// Drain client frames so close/pong handling works; the feed is
	// write-only from our side.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(feedPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
