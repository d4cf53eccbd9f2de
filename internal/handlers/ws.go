package handlers

import (
	"log"
	"net/http"

	"github.com/verstuyftj/ScrumPointPlanner/internal/protocol"
	"github.com/verstuyftj/ScrumPointPlanner/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	protocol *protocol.Handler
}

func NewWSHandler(p *protocol.Handler) *WSHandler {
	return &WSHandler{protocol: p}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      Planning poker event channel
// @Description  Connect via WebSocket to join a session and exchange planning poker events
// @Tags         websocket
// @Router       /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	client := ws.NewClient(conn)
	h.protocol.HandleConnect(client)
	defer h.protocol.HandleDisconnect(client)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		h.protocol.HandleMessage(client, data)
	}
}
