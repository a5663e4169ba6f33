package service

import (
	"context"

	"github.com/Skotchmaster/restaurant_ordering/internal/events"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

// publish is best-effort: a broker failure is logged and never fails the
// mutation that triggered it.
func publish(ctx context.Context, pub events.Publisher, topic, key, typ string, payload any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, topic, key, events.New(typ, payload)); err != nil {
		logging.FromContext(ctx).Warn("event_publish_error", "topic", topic, "type", typ, "error", err)
	}
}
