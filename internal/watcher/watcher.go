// Package watcher runs the poll loop: fetch homework statuses, validate the
// response, diff the newest status message against the last one sent, notify
// on change, sleep, repeat. The loop never terminates on its own; every
// error is funneled into a best-effort failure notification.
package watcher

import (
	"context"
	"time"

	"hwbot/internal/practicum"
	"hwbot/pkg/logx"
)

// StatusSource fetches the raw homework-statuses payload for a cursor.
type StatusSource interface {
	HomeworkStatuses(ctx context.Context, since int64) ([]byte, error)
}

// Notifier delivers a plain-text message to the configured chat.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type Watcher struct {
	source   StatusSource
	notifier Notifier
	trigger  *Trigger
	log      logx.Logger

	// since is the from_date cursor. It is set once at startup and never
	// advanced: the API reports everything after the cursor and the loop
	// only inspects the newest record, so a moving cursor buys nothing.
	since int64

	lastSent    string
	lastFailure string
}

func New(source StatusSource, notifier Notifier, trigger *Trigger, log logx.Logger) *Watcher {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Watcher{
		source:   source,
		notifier: notifier,
		trigger:  trigger,
		log:      log,
		since:    time.Now().Unix(),
	}
}

// Run blocks until ctx is cancelled. Each iteration runs one poll cycle and
// then waits for the trigger; the wait is unconditional, it happens whether
// the cycle succeeded, failed, or found nothing new.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Info("watcher started",
		logx.String("schedule", w.trigger.String()), logx.Int64("since", w.since))

	for {
		w.runCycle(ctx)

		if err := w.trigger.Wait(ctx); err != nil {
			w.log.Info("watcher stopped")
			return nil
		}
	}
}

func (w *Watcher) runCycle(ctx context.Context) {
	if err := w.cycle(ctx); err != nil {
		w.reportFailure(ctx, err)
		return
	}
	w.lastFailure = ""
}

func (w *Watcher) cycle(ctx context.Context) error {
	raw, err := w.source.HomeworkStatuses(ctx, w.since)
	if err != nil {
		return err
	}

	resp, err := practicum.CheckResponse(raw)
	if err != nil {
		return err
	}

	if len(resp.Homeworks) == 0 {
		w.log.Debug("no homeworks in response", logx.Int64("since", w.since))
		return nil
	}

	hw := resp.Homeworks[0]
	msg, err := practicum.ParseStatus(hw)
	if err != nil {
		return err
	}

	if msg == w.lastSent {
		w.log.Debug("status unchanged, skipping notification",
			logx.String("homework", hw.HomeworkName))
		return nil
	}

	if err := w.notifier.Send(ctx, msg); err != nil {
		return err
	}
	w.lastSent = msg
	w.log.Info("status change notified",
		logx.String("homework", hw.HomeworkName), logx.String("status", hw.Status))
	return nil
}

// reportFailure converts a cycle error into a notification. Delivery here is
// best-effort: a broken notifier must never take the loop down. A distinct
// failure text is delivered at most once until the failure changes.
func (w *Watcher) reportFailure(ctx context.Context, err error) {
	w.log.Error("poll cycle failed", logx.Err(err))

	msg := "Сбой в работе программы: " + err.Error()
	if msg == w.lastFailure {
		return
	}
	if sendErr := w.notifier.Send(ctx, msg); sendErr != nil {
		w.log.Error("failure notification not delivered", logx.Err(sendErr))
		return
	}
	w.lastFailure = msg
}
