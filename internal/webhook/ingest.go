package webhook

import (
	"context"
	"encoding/json"
	"net/http"

	"paygate/internal/messaging"
	"paygate/pkg/logger"
)

// MsgTypeNotification is the envelope type for queued gateway notifications.
const MsgTypeNotification = "gateway.notification"

// Ingestor accepts a raw inbound payload and produces the HTTP outcome the
// transport should answer with.
type Ingestor interface {
	Ingest(ctx context.Context, raw []byte, mode Mode) Outcome
}

// SyncIngestor processes the payload inline with the HTTP request.
type SyncIngestor struct {
	adapter *Adapter
}

func NewSyncIngestor(adapter *Adapter) *SyncIngestor {
	return &SyncIngestor{adapter: adapter}
}

func (s *SyncIngestor) Ingest(ctx context.Context, raw []byte, mode Mode) Outcome {
	return s.adapter.HandleInboundResponse(ctx, raw, mode)
}

// AsyncIngestor queues notifications for background processing and answers
// 200 immediately. Redirect-mode requests have a customer waiting in the
// browser, so they are still processed inline.
type AsyncIngestor struct {
	sync      *SyncIngestor
	publisher messaging.Publisher
	log       *logger.Logger
}

func NewAsyncIngestor(sync *SyncIngestor, publisher messaging.Publisher, l *logger.Logger) *AsyncIngestor {
	return &AsyncIngestor{
		sync:      sync,
		publisher: publisher,
		log:       l,
	}
}

func (a *AsyncIngestor) Ingest(ctx context.Context, raw []byte, mode Mode) Outcome {
	if mode == ModeRedirect {
		return a.sync.Ingest(ctx, raw, mode)
	}

	env, err := messaging.NewEnvelope("", MsgTypeNotification, json.RawMessage(raw))
	if err != nil {
		a.log.ErrorCtx(ctx, "Failed to build notification envelope: error=%v", err)
		return a.sync.Ingest(ctx, raw, mode)
	}

	if err := a.publisher.Publish(ctx, env); err != nil {
		a.log.ErrorCtx(ctx, "Failed to queue notification, processing inline: error=%v", err)
		return a.sync.Ingest(ctx, raw, mode)
	}

	return Outcome{Status: http.StatusOK}
}
