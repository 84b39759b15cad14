// Package websocket carries the assistant chat over a persistent
// connection. Each connection is one chat session: questions stream in,
// answers stream out, and a question sent while an earlier one is still
// in flight supersedes it.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 16 * 1024

	// Rate limiting: max questions per second
	maxMessagesPerSecond = 10
)

// ClientMessage is a question from the shopper
type ClientMessage struct {
	Message string `json:"message"`
}

// ServerMessage is an assistant reply or greeting
type ServerMessage struct {
	Type string `json:"type"` // greeting, answer, error
	Text string `json:"text"`
}

// Session is one assistant conversation over a websocket
type Session struct {
	id        string
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	assistant service.AssistantService

	messageCount  int
	lastResetTime time.Time
}

// Handler upgrades HTTP requests into assistant chat sessions
type Handler struct {
	assistant service.AssistantService
	upgrader  websocket.Upgrader
}

func NewHandler(assistant service.AssistantService, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return &Handler{
		assistant: assistant,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin] || allowed["*"]
			},
		},
	}
}

// Serve upgrades the request and runs the session until the peer leaves
// GET /api/v1/assistant/ws
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	session := &Session{
		id:            uuid.NewString(),
		conn:          conn,
		send:          make(chan []byte, 16),
		done:          make(chan struct{}),
		assistant:     h.assistant,
		lastResetTime: time.Now(),
	}

	logger.Info("Assistant session opened", map[string]interface{}{
		"session_id": session.id,
	})

	session.enqueue(ServerMessage{
		Type: "greeting",
		Text: h.assistant.Greeting(c.Request.Context()),
	})

	go session.writePump()
	session.readPump()
}

func (s *Session) enqueue(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error("Failed to marshal assistant message", err, nil)
		return
	}
	select {
	case s.send <- data:
	case <-s.done:
	default:
		logger.Warn("Assistant send buffer full, dropping message", map[string]interface{}{
			"session_id": s.id,
		})
	}
}

func (s *Session) readPump() {
	defer func() {
		close(s.done)
		s.conn.Close()
		logger.Info("Assistant session closed", map[string]interface{}{
			"session_id": s.id,
		})
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket read error", err, map[string]interface{}{
					"session_id": s.id,
				})
			}
			return
		}

		if !s.allowMessage() {
			s.enqueue(ServerMessage{Type: "error", Text: "Too many questions, slow down a little."})
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil || msg.Message == "" {
			s.enqueue(ServerMessage{Type: "error", Text: "Send questions as {\"message\": \"...\"}."})
			continue
		}

		// answer asynchronously so a newer question can supersede this one
		go func(question string) {
			reply, err := s.assistant.Ask(context.Background(), s.id, question)
			if err != nil {
				if errors.Is(err, service.ErrSuperseded) {
					return
				}
				logger.Error("Assistant question failed", err, map[string]interface{}{
					"session_id": s.id,
				})
				return
			}
			s.enqueue(ServerMessage{Type: "answer", Text: reply})
		}(msg.Message)
	}
}

func (s *Session) allowMessage() bool {
	now := time.Now()
	if now.Sub(s.lastResetTime) >= time.Second {
		s.messageCount = 0
		s.lastResetTime = now
	}
	s.messageCount++
	return s.messageCount <= maxMessagesPerSecond
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Error("Failed to write assistant message", err, map[string]interface{}{
					"session_id": s.id,
				})
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
