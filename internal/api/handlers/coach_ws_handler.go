package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/podiumcoach/podium/internal/models"
	"github.com/podiumcoach/podium/internal/services"
)

type CoachWSHandler struct {
	coach    services.CoachService
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

func NewCoachWSHandler(coach services.CoachService, log *logrus.Logger) *CoachWSHandler {
	return &CoachWSHandler{
		coach: coach,
		log:   log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
	}
}

type coachClientMsg struct {
	Message string         `json:"message"`
	Report  *models.Report `json:"report,omitempty"`
}

type coachServerMsg struct {
	Type  string `json:"type"` // chunk | done | error
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.c.WriteMessage(websocket.TextMessage, b)
}

// Chat upgrades to a websocket and answers each client message with a
// stream of chunk frames followed by a done frame. The report sent with a
// message scopes the coaching context for that answer only.
func (h *CoachWSHandler) Chat(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote a response in most cases
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}
	ctx := c.Request.Context()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg coachClientMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = wc.writeJSON(coachServerMsg{Type: "error", Error: "invalid message"})
			continue
		}

		chunks, errs, err := h.coach.Stream(ctx, msg.Message, msg.Report)
		if err != nil {
			_ = wc.writeJSON(coachServerMsg{Type: "error", Error: err.Error()})
			continue
		}

		streamFailed := false
		for chunk := range chunks {
			if err := wc.writeJSON(coachServerMsg{Type: "chunk", Text: chunk}); err != nil {
				return
			}
		}
		if serr := <-errs; serr != nil {
			h.log.WithError(serr).Warn("coach stream failed")
			_ = wc.writeJSON(coachServerMsg{Type: "error", Error: "coach stream failed"})
			streamFailed = true
		}
		if !streamFailed {
			_ = wc.writeJSON(coachServerMsg{Type: "done"})
		}
	}
}
