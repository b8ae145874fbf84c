package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"SMART_CART/go-backend/internal/models"
	"SMART_CART/go-backend/internal/tracker"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  64 * 1024,
	WriteBufferSize: 4 * 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsMessage struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

type framePayload struct {
	Data           string `json:"data"`
	SequenceNumber int32  `json:"sequence_number"`
}

type wsConn struct {
	conn      *websocket.Conn
	sessionID string
	send      chan wsMessage
}

// HandleWebSocket is the frame ingestion endpoint for remote devices. A
// connection is bound to one session; frames arrive either as binary
// messages carrying encoded image bytes or as FRAME text messages with a
// base64 payload.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}
	if !h.registry.Active(sessionID) {
		http.Error(w, "No active session; create a cart first", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.metrics.IncrementWSConnections()
	log.Printf("Frame producer connected: session=%s", sessionID)

	client := &wsConn{
		conn:      conn,
		sessionID: sessionID,
		send:      make(chan wsMessage, 64),
	}

	go h.writePump(client)
	h.readPump(client)

	h.metrics.DecrementWSConnections()
	log.Printf("Frame producer disconnected: session=%s", sessionID)
}

func (h *Handler) readPump(client *wsConn) {
	defer func() {
		close(client.send)
		client.conn.Close()
	}()

	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	seq := int32(0)
	for {
		msgType, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket error for session %s: %v", client.sessionID, err)
			}
			return
		}
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		switch msgType {
		case websocket.BinaryMessage:
			seq++
			if !h.enqueue(client, data, seq) {
				return
			}

		case websocket.TextMessage:
			var msg wsMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				log.Printf("Bad message from session %s: %v", client.sessionID, err)
				continue
			}
			switch msg.Type {
			case "PING":
				client.send <- wsMessage{Type: "PONG", SessionID: client.sessionID, Timestamp: time.Now().Unix()}
			case "FRAME":
				var p framePayload
				if err := json.Unmarshal(msg.Payload, &p); err != nil {
					log.Printf("Bad frame payload from session %s: %v", client.sessionID, err)
					continue
				}
				raw, err := base64.StdEncoding.DecodeString(p.Data)
				if err != nil {
					log.Printf("Bad frame encoding from session %s: %v", client.sessionID, err)
					continue
				}
				seq = p.SequenceNumber
				if !h.enqueue(client, raw, seq) {
					return
				}
			default:
				log.Printf("Unknown message type from session %s: %s", client.sessionID, msg.Type)
			}
		}
	}
}

// enqueue hands a frame to the session worker. Returns false when the
// session is gone, which terminates the connection.
func (h *Handler) enqueue(client *wsConn, data []byte, seq int32) bool {
	frame := &models.Frame{
		Data:           data,
		Timestamp:      time.Now().UnixMilli(),
		SequenceNumber: seq,
	}
	accepted, err := h.registry.EnqueueFrame(client.sessionID, frame)
	if errors.Is(err, tracker.ErrNoWorker) {
		h.notifyClosed(client)
		return false
	}
	if err != nil {
		log.Printf("Enqueue failed for session %s: %v", client.sessionID, err)
		return false
	}
	if !accepted {
		// Worker is behind; the frame was dropped, not queued.
		log.Printf("Frame %d dropped for session %s: queue full", seq, client.sessionID)
	}
	return true
}

func (h *Handler) notifyClosed(client *wsConn) {
	client.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
		time.Now().Add(time.Second))
}

func (h *Handler) writePump(client *wsConn) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
