package gateway

import (
	"context"
	"fmt"

	"content-indexer/domain"
	"content-indexer/driver"
	"content-indexer/port"
)

// ContentDriver is the database driver surface consumed by the gateway.
type ContentDriver interface {
	GetContentPage(ctx context.Context, lastID int64, limit int) ([]*driver.ContentRecord, int64, error)
	GetContentByID(ctx context.Context, id int64) (*driver.ContentRecord, error)
	SaveIndexingStatus(ctx context.Context, contentID int64, status, message string) error
}

// ContentRepositoryGateway adapts the database driver to the domain-facing
// ContentRepository port.
type ContentRepositoryGateway struct {
	driver ContentDriver
}

func NewContentRepositoryGateway(driver ContentDriver) *ContentRepositoryGateway {
	return &ContentRepositoryGateway{driver: driver}
}

func (g *ContentRepositoryGateway) GetContentPage(ctx context.Context, lastID int64, limit int) ([]*domain.Content, int64, error) {
	records, nextID, err := g.driver.GetContentPage(ctx, lastID, limit)
	if err != nil {
		return nil, 0, &port.RepositoryError{
			Op:  "GetContentPage",
			Err: err.Error(),
		}
	}

	contents := make([]*domain.Content, 0, len(records))
	for _, record := range records {
		content, err := g.convertToDomain(record)
		if err != nil {
			return nil, 0, &port.RepositoryError{
				Op:  "GetContentPage",
				Err: fmt.Sprintf("failed to convert content to domain: id=%d, %v", record.ID, err),
			}
		}
		contents = append(contents, content)
	}

	return contents, nextID, nil
}

func (g *ContentRepositoryGateway) GetContentByID(ctx context.Context, id int64) (*domain.Content, error) {
	record, err := g.driver.GetContentByID(ctx, id)
	if err != nil {
		return nil, &port.RepositoryError{
			Op:  "GetContentByID",
			Err: err.Error(),
		}
	}

	content, err := g.convertToDomain(record)
	if err != nil {
		return nil, &port.RepositoryError{
			Op:  "GetContentByID",
			Err: err.Error(),
		}
	}
	return content, nil
}

func (g *ContentRepositoryGateway) SaveIndexingStatus(ctx context.Context, contentID int64, outcome domain.IndexOutcome) error {
	if err := g.driver.SaveIndexingStatus(ctx, contentID, string(outcome.Status), outcome.Message); err != nil {
		return &port.RepositoryError{
			Op:  "SaveIndexingStatus",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *ContentRepositoryGateway) convertToDomain(record *driver.ContentRecord) (*domain.Content, error) {
	return domain.NewContent(
		record.ID,
		record.Name,
		record.ContentType,
		record.Properties,
		record.Published,
		record.UpdatedAt,
	)
}
