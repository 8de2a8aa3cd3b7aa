package server

import (
	"context"
	"net/http"
	"time"

	"github.com/expenses/snowy/internal/engine"
	"github.com/expenses/snowy/pkg/api"
	"github.com/expenses/snowy/pkg/logger"
	"github.com/expenses/snowy/pkg/utils"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game    *engine.GameService
	Conn    *websocket.Conn
	Send    chan api.ServerResponse
	Session string
}

// NewClient сразу подписывает сессию на кадры, чтобы не потерять ответ на INIT.
func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	session := utils.NewSessionID()
	return &Client{
		Game:    game,
		Conn:    conn,
		Send:    game.Hub.Register(session),
		Session: session,
	}
}

// readPump читает команды от клиента
func (c *Client) readPump(ctx context.Context) {
	log := logger.Log.WithField("session", c.Session)

	defer func() {
		c.Game.Hub.Unregister(c.Session)
		if err := c.Conn.Close(); err != nil {
			log.WithError(err).Debug("failed to close websocket connection")
		}
		log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	log.WithFields(logrus.Fields{
		"remote": c.Conn.RemoteAddr().String(),
	}).Info("Client connected")

	// Отправляем INIT (триггер первой отрисовки)
	if err := c.Game.ProcessCommand(ctx, api.ClientCommand{Action: "INIT"}, c.Session); err != nil {
		log.WithError(err).Warn("INIT rejected")
		return
	}

	// ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).Error("WS error")
			}
			break
		}
		if err := c.Game.ProcessCommand(ctx, cmd, c.Session); err != nil {
			log.WithError(err).Debug("Command dropped")
			if ctx.Err() != nil {
				break
			}
		}
	}
}

// writePump отправляет кадры клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
