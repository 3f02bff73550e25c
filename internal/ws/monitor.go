package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"callwatch/internal/monitor"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Monitor streams the live-call feed: one snapshot message on connect, then
// a delta per store event until the client goes away.
func Monitor(core *monitor.Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		log.Println("🔌 WS CONNECT", r.RemoteAddr)

		// Subscribe before taking the snapshot so the delta stream starts
		// at or before the snapshot point; a delta the snapshot already
		// reflects is harmless, a lost one is not.
		sub := core.Store().Subscribe()
		defer core.Store().Unsubscribe(sub)

		err = conn.WriteJSON(map[string]any{
			"type": "snapshot",
			"data": map[string]any{
				"calls": core.Sessions(),
				"stats": core.Stats(),
			},
		})
		if err != nil {
			return
		}

		// Read pump: the client sends nothing we care about, but reading is
		// how we notice it went away.
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-gone:
				return
			case ev := <-sub:
				err := conn.WriteJSON(map[string]any{
					"type": string(ev.Kind),
					"data": ev.Session,
				})
				if err != nil {
					return
				}
			}
		}
	}
}
