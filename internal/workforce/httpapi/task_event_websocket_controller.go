package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"
	"workforce-server/internal/infra/async"
	"workforce-server/internal/infra/httpserver"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/httpapi/internal"
	"workforce-server/internal/workforce/usecases"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// origin is enforced by the CORS layer in front of the router
		return true
	},
}

// clientSubscription ties a connection to the audiences it may receive.
type clientSubscription struct {
	conn      *websocket.Conn
	audiences []domain.Audience
}

// TaskEventWebSocketController streams task events to connected clients.
// Each client receives only the events addressed to an audience derived from
// its principal: employees their own channel, department admins their
// department's channel, global admins the global channel.
type TaskEventWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]*clientSubscription
	clientsMux sync.RWMutex
	register   chan *clientSubscription
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewTaskEventWebSocketController(broker async.InternalBroker) *TaskEventWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &TaskEventWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]*clientSubscription),
		register:   make(chan *clientSubscription),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	go wsc.run()

	return wsc
}

var _ httpserver.Controller = (*TaskEventWebSocketController)(nil)

func (wsc *TaskEventWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/ws/task-events", wsc.handleWebSocket())
}

func (wsc *TaskEventWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.PrincipalFromContext(r.Context())
		if !ok {
			http.Error(w, authenticationRequiredErrMessage, http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		audiences := audiencesForPrincipal(principal)

		slog.Info("new task event websocket connection established",
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_id", principal.UserID),
			slog.String("role", principal.Role))

		subscription := &clientSubscription{
			conn:      conn,
			audiences: audiences,
		}

		wsc.register <- subscription

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

// audiencesForPrincipal resolves the channels a caller listens on. Everyone
// gets their personal channel; admins additionally get their department
// channel, or the global channel when they belong to no department.
func audiencesForPrincipal(principal httpserver.Principal) []domain.Audience {
	audiences := []domain.Audience{domain.EmployeeAudience(domain.ID(principal.UserID))}

	if principal.IsAdmin() {
		if principal.DepartmentID != "" {
			audiences = append(audiences, domain.DepartmentAdminsAudience(domain.ID(principal.DepartmentID)))
		} else {
			audiences = append(audiences, domain.GlobalAdminsAudience())
		}
	}

	return audiences
}

func (wsc *TaskEventWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		select {
		case <-wsc.ctx.Done():
		default:
			select {
			case wsc.unregister <- conn:
			default:
			}
		}
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (wsc *TaskEventWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (wsc *TaskEventWebSocketController) run() {
	subscription, err := wsc.broker.Subscribe(usecases.TaskEventsTopic)
	if err != nil {
		slog.Error("failed to subscribe to task events", slog.String("error", err.Error()))
		return
	}
	defer wsc.broker.Unsubscribe(usecases.TaskEventsTopic, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case clientSub := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[clientSub.conn] = clientSub
			wsc.clientsMux.Unlock()
			slog.Info("task event websocket client registered",
				slog.Int("total_clients", len(wsc.clients)))

		case client := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[client]; ok {
				delete(wsc.clients, client)
				client.Close()
				slog.Info("task event websocket client unregistered",
					slog.Int("total_clients", len(wsc.clients)))
			}
			wsc.clientsMux.Unlock()

		case brokerMsg := <-subscription.Receiver:
			event, ok := brokerMsg.Value.(domain.TaskEvent)
			if !ok {
				continue
			}
			wsc.sendEventToAudiences(event)
		}
	}
}

func (wsc *TaskEventWebSocketController) sendEventToAudiences(event domain.TaskEvent) {
	message := internal.ToTaskEventMessage(event)

	wsc.clientsMux.RLock()
	clientsToRemove := make([]*websocket.Conn, 0)
	for conn, clientSub := range wsc.clients {
		if !audiencesIntersect(clientSub.audiences, event.Audiences) {
			continue
		}

		select {
		case <-wsc.ctx.Done():
			wsc.clientsMux.RUnlock()
			return
		default:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(message); err != nil {
				slog.Error("failed to write task event to websocket client",
					slog.String("task_log_id", message.TaskLogID),
					slog.String("error", err.Error()))
				clientsToRemove = append(clientsToRemove, conn)
			}
		}
	}
	wsc.clientsMux.RUnlock()

	if len(clientsToRemove) > 0 {
		wsc.clientsMux.Lock()
		for _, conn := range clientsToRemove {
			if _, ok := wsc.clients[conn]; ok {
				delete(wsc.clients, conn)
				conn.Close()
			}
		}
		wsc.clientsMux.Unlock()
	}
}

func audiencesIntersect(client, event []domain.Audience) bool {
	for _, audience := range event {
		if slices.Contains(client, audience) {
			return true
		}
	}
	return false
}

func (wsc *TaskEventWebSocketController) Shutdown() {
	slog.Info("shutting down task event websocket controller")
	wsc.cancel()

	wsc.clientsMux.Lock()
	for client := range wsc.clients {
		client.Close()
	}
	wsc.clientsMux.Unlock()

	close(wsc.register)
	close(wsc.unregister)
}
