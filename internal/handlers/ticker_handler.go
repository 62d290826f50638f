package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"coinpulse/internal/logger"
	"coinpulse/internal/market"
)

const tickerWriteTimeout = 10 * time.Second

// TickerHandler streams landing-page ticker quotes over a websocket.
// Each connection polls the market service independently; the evolution
// interval inside the service keeps the actual work bounded no matter
// how many clients connect.
type TickerHandler struct {
	service  market.Querier
	interval time.Duration
	topN     int
	upgrader websocket.Upgrader
}

// NewTickerHandler creates a TickerHandler pushing the top topN assets
// every interval.
func NewTickerHandler(service market.Querier, interval time.Duration, topN int) *TickerHandler {
	return &TickerHandler{
		service:  service,
		interval: interval,
		topN:     topN,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The ticker is public display data on a marketing page.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// TickerQuote is one entry in a streamed ticker frame.
type TickerQuote struct {
	Symbol        string           `json:"symbol"`
	Price         float64          `json:"price"`
	DisplayPrice  string           `json:"display_price"`
	ChangePercent float64          `json:"change_percent"`
	Direction     market.Direction `json:"direction"`
}

// TickerFrame is one websocket message.
type TickerFrame struct {
	Quotes []TickerQuote `json:"quotes"`
	SentAt time.Time     `json:"sent_at"`
}

// Stream upgrades the connection and pushes quote frames until the
// client disconnects or a write fails.
// @Summary     Live ticker stream
// @Description Websocket stream of top asset quotes
// @Tags        markets
// @Router      /ws/ticker [get]
func (h *TickerHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		logger.Get().Warnw("ticker upgrade failed", "error", err.Error(), "client_ip", c.ClientIP())
		return
	}
	defer conn.Close()

	// Drain control frames so pings and close messages are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		if err := h.writeFrame(conn); err != nil {
			return
		}

		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *TickerHandler) writeFrame(conn *websocket.Conn) error {
	assets := h.service.ByMarketCap(h.topN)

	frame := TickerFrame{SentAt: time.Now().UTC()}
	for _, a := range assets {
		frame.Quotes = append(frame.Quotes, TickerQuote{
			Symbol:        a.Symbol,
			Price:         a.Price,
			DisplayPrice:  market.FormatPrice(a.Price),
			ChangePercent: a.ChangePercent24h,
			Direction:     market.ChangeDirection(a.ChangePercent24h),
		})
	}

	if err := conn.SetWriteDeadline(time.Now().Add(tickerWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}
