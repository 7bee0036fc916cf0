// Package notify delivers plain-text notifications to the configured chat.
//
// Delivery goes through a transport.Adapter so the watcher and tests never
// touch Telegram directly. Sends are paced by a token bucket and journaled
// to storage when a store is configured.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"hwbot/internal/storage"
	kit "hwbot/internal/transport"
	"hwbot/pkg/logx"
)

// ErrDelivery wraps any failure of the underlying send call.
var ErrDelivery = errors.New("notify: message delivery failed")

const historyMax = 100

type HistoryItem struct {
	At   time.Time
	Text string
	OK   bool
}

type Config struct {
	Target kit.ChatTarget
	// RatePerSec paces sends; Telegram rejects bursts to a single chat.
	// Defaults to 1.
	RatePerSec int
}

type Service struct {
	adapter kit.Adapter
	target  kit.ChatTarget
	limiter *rate.Limiter
	store   storage.Store
	log     logx.Logger

	mu      sync.Mutex
	history []HistoryItem
}

// New creates the notify service. store may be nil (journaling disabled).
func New(cfg Config, adapter kit.Adapter, store storage.Store, log logx.Logger) *Service {
	rps := cfg.RatePerSec
	if rps <= 0 {
		rps = 1
	}
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{
		adapter: adapter,
		target:  cfg.Target,
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		store:   store,
		log:     log,
	}
}

// Send delivers text to the configured chat. Failures wrap ErrDelivery;
// the caller decides whether a failed delivery matters.
func (s *Service) Send(ctx context.Context, text string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	_, sendErr := s.adapter.SendText(ctx, s.target, text, &kit.SendOptions{DisablePreview: true})

	s.journal(ctx, text, sendErr)
	s.appendHistory(HistoryItem{At: time.Now(), Text: text, OK: sendErr == nil})

	if sendErr != nil {
		s.log.Warn("notification send failed",
			logx.Int64("chat_id", s.target.ChatID), logx.Err(sendErr))
		return fmt.Errorf("%w: %v", ErrDelivery, sendErr)
	}
	s.log.Debug("notification sent", logx.Int64("chat_id", s.target.ChatID))
	return nil
}

func (s *Service) journal(ctx context.Context, text string, sendErr error) {
	if s.store == nil {
		return
	}
	e := storage.DeliveryEntry{At: time.Now(), ChatID: s.target.ChatID, Text: text, OK: sendErr == nil}
	if sendErr != nil {
		e.Error = sendErr.Error()
	}
	if err := s.store.AppendDelivery(ctx, e); err != nil {
		s.log.Debug("delivery journal append failed", logx.Err(err))
	}
}

// History returns a copy of the recent notification attempts.
func (s *Service) History() []HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]HistoryItem(nil), s.history...)
}

func (s *Service) appendHistory(x HistoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, x)
	if len(s.history) > historyMax {
		s.history = s.history[len(s.history)-historyMax:]
	}
}
