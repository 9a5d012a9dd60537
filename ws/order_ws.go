package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/services"
	"github.com/Keshavsaini22/slooze-assignment/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// OrderHub กระจาย order event ให้ทุก connection ที่มีสิทธิ์เห็น order นั้น
type OrderHub struct {
	clients    map[*client]bool
	broadcast  chan services.OrderEvent
	register   chan *client
	unregister chan *client
	done       chan struct{}
	mu         sync.Mutex
	log        *slog.Logger
}

// client = 1 connection ของ 1 actor
type client struct {
	conn  *websocket.Conn
	actor policy.Actor
	send  chan services.OrderEvent
}

func NewOrderHub(log *slog.Logger) *OrderHub {
	if log == nil {
		log = slog.Default()
	}
	return &OrderHub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan services.OrderEvent, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Publish ไม่ block; ถ้า buffer เต็ม event จะถูกทิ้ง
func (h *OrderHub) Publish(evt services.OrderEvent) {
	select {
	case h.broadcast <- evt:
	case <-h.done:
	default:
		h.log.Warn("order event dropped", slog.String("order_id", evt.OrderID), slog.String("type", string(evt.Type)))
	}
}

// Run คอยฟัง register/unregister/broadcast จนกว่า ctx จะถูกยกเลิก
func (h *OrderHub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		h.mu.Lock()
		defer h.mu.Unlock()
		for c := range h.clients {
			close(c.send)
			delete(h.clients, c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			// order จาก event พอสำหรับตรวจสิทธิ์ (owner + country)
			o := &entity.Order{UserID: evt.OwnerID, RestaurantCountry: evt.RestaurantCountry}
			for c := range h.clients {
				if !policy.CanViewOrder(c.actor, o) {
					continue
				}
				select {
				case c.send <- evt:
				default:
					// client ช้าเกินไป -> ตัดทิ้ง
					h.log.Warn("slow order subscriber dropped", slog.String("user_id", c.actor.ID))
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Subscribers คืนจำนวน connection ที่ลงทะเบียนอยู่
func (h *OrderHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders?token=
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	actor, ok := utils.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", slog.Any("error", err))
		return
	}

	cl := &client{conn: conn, actor: actor, send: make(chan services.OrderEvent, sendBuffer)}
	select {
	case h.register <- cl:
	case <-h.done:
		conn.Close()
		return
	}

	go h.writePump(cl)
	go h.readPump(cl)
}

// readPump ทิ้งข้อความจาก client; มีไว้จับการปิด connection และ pong
func (h *OrderHub) readPump(cl *client) {
	defer func() {
		select {
		case h.unregister <- cl:
		case <-h.done:
		}
		cl.conn.Close()
	}()

	cl.conn.SetReadLimit(512)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *OrderHub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case evt, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteJSON(evt); err != nil {
				h.log.Debug("ws write failed", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
