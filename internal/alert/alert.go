// Package alert emails the kitchen manager when an adjustment drives an item
// into critical stock, and sends a daily digest of all alerts. Alerts are
// best effort: failures are logged, never surfaced to the request.
package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/restaurant-inventory/internal/config"
	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
)

const dailyAlertLogKey = "lowstock:alertlog:daily"

type Entry struct {
	ItemID   string    `json:"itemId"`
	ItemName string    `json:"itemName"`
	Stock    float64   `json:"stock"`
	MinStock float64   `json:"minStock"`
	Unit     string    `json:"unit"`
	Time     time.Time `json:"time"`
}

type Notifier struct {
	smtp config.SMTP
	rdb  *redis.Client
	ctx  context.Context
}

// NewNotifier builds a notifier; rdb may be nil, which disables the digest
// log but still sends immediate alerts when SMTP is configured.
func NewNotifier(smtpCfg config.SMTP, rdb *redis.Client, ctx context.Context) *Notifier {
	return &Notifier{smtp: smtpCfg, rdb: rdb, ctx: ctx}
}

func (n *Notifier) enabled() bool { return n.smtp.Server != "" && n.smtp.AlertTo != "" }

// NotifyLowStock records and mails a critical-stock event.
func (n *Notifier) NotifyLowStock(item models.InventoryItem) {
	entry := Entry{
		ItemID:   item.ID,
		ItemName: item.Name,
		Stock:    item.CurrentStock,
		MinStock: item.MinStock,
		Unit:     item.Unit,
		Time:     time.Now().UTC(),
	}
	if n.rdb != nil {
		data, _ := json.Marshal(entry)
		_ = n.rdb.RPush(n.ctx, dailyAlertLogKey, data).Err()
	}
	if !n.enabled() {
		return
	}

	subject := fmt.Sprintf("Low stock: %s", item.Name)
	body := fmt.Sprintf("Item: %s\nStock: %g %s (min %g)\nTime: %s",
		item.Name, item.CurrentStock, item.Unit, item.MinStock, entry.Time.Format(time.RFC3339))
	n.send(subject, body)
}

// StartDailySummary mails a digest of the day's alerts on the given interval.
// Run in a goroutine from main.
func (n *Notifier) StartDailySummary(interval time.Duration) {
	for {
		time.Sleep(interval)
		n.SendDailySummary()
	}
}

func (n *Notifier) SendDailySummary() {
	if n.rdb == nil || !n.enabled() {
		return
	}
	items, err := n.rdb.LRange(n.ctx, dailyAlertLogKey, 0, -1).Result()
	if err != nil || len(items) == 0 {
		return
	}
	_ = n.rdb.Del(n.ctx, dailyAlertLogKey).Err() // clear after reading

	var sb strings.Builder
	fmt.Fprintf(&sb, "Low stock alerts: %d\n\n", len(items))
	for _, raw := range items {
		var e Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		fmt.Fprintf(&sb, "- %s: %g %s (min %g) at %s\n",
			e.ItemName, e.Stock, e.Unit, e.MinStock, e.Time.Format(time.RFC822))
	}
	n.send("Daily low stock summary", sb.String())
}

func (n *Notifier) send(subject, body string) {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.smtp.AlertFrom, n.smtp.AlertTo, subject, body)
	addr := fmt.Sprintf("%s:%s", n.smtp.Server, n.smtp.Port)

	var auth smtp.Auth
	if n.smtp.User != "" {
		auth = smtp.PlainAuth("", n.smtp.User, n.smtp.Password, n.smtp.Server)
	}

	go func() {
		if err := smtp.SendMail(addr, auth, n.smtp.AlertFrom, []string{n.smtp.AlertTo}, []byte(msg)); err != nil {
			log.Error().Err(err).Msg("failed to send alert email")
		}
	}()
}
