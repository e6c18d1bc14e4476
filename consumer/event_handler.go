package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"content-indexer/domain"
	"content-indexer/port"
	"content-indexer/usecase"
)

// Content lifecycle event types emitted by the CMS.
const (
	EventContentPublished   = "ContentPublished"
	EventContentUpdated     = "ContentUpdated"
	EventContentUnpublished = "ContentUnpublished"
	EventContentDeleted     = "ContentDeleted"
)

// ContentEventPayload is the payload shared by all content lifecycle
// events.
type ContentEventPayload struct {
	ContentID int64 `json:"content_id"`
}

// ContentEventHandler reacts to CMS lifecycle events: publish/update leads
// to an index attempt, unpublish/delete to a removal. After every attempt
// the outcome is persisted as the entity's indexing status.
type ContentEventHandler struct {
	indexer     *usecase.IndexContentUsecase
	contentRepo port.ContentRepository
	logger      *slog.Logger
}

func NewContentEventHandler(indexer *usecase.IndexContentUsecase, contentRepo port.ContentRepository, logger *slog.Logger) *ContentEventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentEventHandler{
		indexer:     indexer,
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// HandleEvent processes a single event. Unknown event types are logged and
// skipped.
func (h *ContentEventHandler) HandleEvent(ctx context.Context, event Event) error {
	switch event.EventType {
	case EventContentPublished, EventContentUpdated:
		return h.handleIndex(ctx, event)
	case EventContentUnpublished, EventContentDeleted:
		return h.handleRemove(ctx, event)
	default:
		h.logger.Warn("unknown event type, skipping",
			"event_type", event.EventType,
			"event_id", event.EventID,
		)
		return nil
	}
}

func (h *ContentEventHandler) handleIndex(ctx context.Context, event Event) error {
	payload, err := h.parsePayload(event)
	if err != nil {
		return err
	}

	content, err := h.contentRepo.GetContentByID(ctx, payload.ContentID)
	if err != nil {
		// Content gone between event emission and processing: treat as a
		// removal instead of retrying forever.
		h.logger.Warn("content not loadable, removing from index",
			"content_id", payload.ContentID,
			"event_id", event.EventID,
			"err", err,
		)
		outcome := h.indexer.RemoveByID(ctx, payload.ContentID)
		h.persistOutcome(ctx, payload.ContentID, outcome)
		return nil
	}

	outcome := h.indexer.Index(ctx, content)
	h.persistOutcome(ctx, payload.ContentID, outcome)

	h.logger.Info("content event processed",
		"event_type", event.EventType,
		"content_id", payload.ContentID,
		"status", outcome.Status,
	)
	return nil
}

func (h *ContentEventHandler) handleRemove(ctx context.Context, event Event) error {
	payload, err := h.parsePayload(event)
	if err != nil {
		return err
	}

	outcome := h.indexer.RemoveByID(ctx, payload.ContentID)
	h.persistOutcome(ctx, payload.ContentID, outcome)

	h.logger.Info("content event processed",
		"event_type", event.EventType,
		"content_id", payload.ContentID,
		"status", outcome.Status,
	)
	return nil
}

func (h *ContentEventHandler) parsePayload(event Event) (ContentEventPayload, error) {
	var payload ContentEventPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		h.logger.Error("failed to unmarshal content event payload",
			"event_id", event.EventID,
			"error", err,
		)
		return payload, err
	}
	return payload, nil
}

// persistOutcome writes the audit status back to the content row. A failed
// write is logged, never escalated: the indexing itself already happened.
func (h *ContentEventHandler) persistOutcome(ctx context.Context, contentID int64, outcome domain.IndexOutcome) {
	if err := h.contentRepo.SaveIndexingStatus(ctx, contentID, outcome); err != nil {
		h.logger.Error("failed to persist indexing status",
			"content_id", contentID,
			"status", outcome.Status,
			"err", err,
		)
	}
}
