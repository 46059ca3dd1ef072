package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	Clients       map[string]map[*websocket.Conn]*Client // per courseID
	GlobalClients map[*websocket.Conn]*Client            // broadcast umum (daftar kursus)
	Mutex         sync.RWMutex
}

var H = Hub{
	Clients:       make(map[string]map[*websocket.Conn]*Client),
	GlobalClients: make(map[*websocket.Conn]*Client),
}

// Event perubahan data yang dikirim ke client; client cukup refetch.
type ChangeEvent struct {
	Type     string `json:"type"`
	CourseID string `json:"course_id,omitempty"`
}

// Register client pada room satu kursus
func (h *Hub) Register(courseID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if _, ok := h.Clients[courseID]; !ok {
		h.Clients[courseID] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.Clients[courseID][conn] = client

	// Loop baca dijalankan handler; hub hanya mengurus tulis
	go h.writePump(courseID, conn)
}

// Register global untuk halaman daftar
func (h *Hub) RegisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.GlobalClients[conn] = client

	go h.writeGlobalPump(conn)
}

// Broadcast ke semua client di room satu kursus
func (h *Hub) Broadcast(courseID string, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	if clients, ok := h.Clients[courseID]; ok {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// Broadcast ke seluruh global client
func (h *Hub) BroadcastGlobal(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.GlobalClients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

func broadcastEvent(ev ChangeEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	if ev.CourseID != "" {
		H.Broadcast(ev.CourseID, data)
	} else {
		H.BroadcastGlobal(data)
	}
}

// BroadcastQuestionsChanged memberi tahu room kursus bahwa daftar
// pertanyaan berubah.
func BroadcastQuestionsChanged(courseID string) {
	broadcastEvent(ChangeEvent{Type: "questions_changed", CourseID: courseID})
}

// BroadcastAnswersChanged memberi tahu room kursus bahwa ada jawaban
// baru/berubah.
func BroadcastAnswersChanged(courseID string) {
	broadcastEvent(ChangeEvent{Type: "answers_changed", CourseID: courseID})
}

// BroadcastCourseListChanged memberi tahu halaman daftar kursus.
func BroadcastCourseListChanged() {
	broadcastEvent(ChangeEvent{Type: "course_list_changed"})
}

// Unregister client dari room kursus
func (h *Hub) Unregister(courseID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.Clients[courseID]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.Clients, courseID)
		}
	}
}

// Unregister global client
func (h *Hub) UnregisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.GlobalClients[conn]; ok {
		close(client.Send)
		delete(h.GlobalClients, conn)
	}
}

func (h *Hub) writePump(courseID string, conn *websocket.Conn) {
	h.Mutex.RLock()
	client := h.Clients[courseID][conn]
	h.Mutex.RUnlock()
	if client == nil {
		return
	}
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func (h *Hub) writeGlobalPump(conn *websocket.Conn) {
	h.Mutex.RLock()
	client := h.GlobalClients[conn]
	h.Mutex.RUnlock()
	if client == nil {
		return
	}
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
