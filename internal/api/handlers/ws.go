package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"voyage-fuel-service/internal/api/dto"
	"voyage-fuel-service/internal/services"
)

// WSHandler serves the live-recompute endpoint used by the map UI: every
// segment edit is pushed over the socket and answered with the freshly
// computed plan, so the ROB column and charts track input keystroke by
// keystroke without a request per field.
type WSHandler struct{}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type wsComputePayload struct {
	StartFuelMt dto.Number           `json:"start_fuel_mt"`
	Segments    []dto.SegmentRequest `json:"segments"`
}

type wsPlanMessage struct {
	Type    string           `json:"type"`
	Payload dto.PlanResponse `json:"payload"`
}

type wsErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("websocket accept failed: %v", err)
		return
	}

	sessionID := uuid.New().String()
	log.Printf("websocket session opened: session_id=%s", sessionID)

	defer func() {
		conn.Close(websocket.StatusNormalClosure, "")
		log.Printf("websocket session closed: session_id=%s", sessionID)
	}()

	ctx := r.Context()

	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				log.Printf("websocket read error: session_id=%s err=%v", sessionID, err)
			}
			return
		}

		if msgType != websocket.MessageText {
			continue
		}

		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.send(ctx, conn, wsErrorMessage{Type: "error", Error: "invalid message format"})
			continue
		}

		switch msg.Type {
		case "compute":
			var payload wsComputePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.send(ctx, conn, wsErrorMessage{Type: "error", Error: "invalid compute payload"})
				continue
			}

			segments := segmentsFromRequest(payload.Segments)
			for i := range segments {
				segments[i].Normalize()
			}

			start := float64(payload.StartFuelMt)
			if start < 0 {
				start = 0
			}

			plan := services.ComputeRoute(segments, start)
			h.send(ctx, conn, wsPlanMessage{Type: "plan", Payload: planToResponse(&plan)})

		case "ping":
			h.send(ctx, conn, wsMessage{Type: "pong"})
		}
	}
}

func (h *WSHandler) send(ctx context.Context, conn *websocket.Conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		log.Printf("websocket write failed: %v", err)
	}
}
