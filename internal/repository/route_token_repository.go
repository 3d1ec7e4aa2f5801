package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain"
	routeDomain "github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteTokenModel is the GORM model for the route_tokens table.
type RouteTokenModel struct {
	ID                           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RequestID                    string          `gorm:"type:text;index"`
	RouteToken                   string          `gorm:"type:text;not null"`
	Origin                       json.RawMessage `gorm:"type:jsonb;not null"`
	Destination                  json.RawMessage `gorm:"type:jsonb;not null"`
	TravelAdvisory               json.RawMessage `gorm:"type:jsonb"`
	RestrictionsPartiallyIgnored bool            `gorm:"not null;default:false"`
	CreatedAt                    time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (RouteTokenModel) TableName() string {
	return "route_tokens"
}

// GormRouteTokenRepository is the GORM-based implementation of routeDomain.TokenRepository.
type GormRouteTokenRepository struct {
	db *gorm.DB
}

// NewGormRouteTokenRepository creates a new GormRouteTokenRepository.
func NewGormRouteTokenRepository(db *gorm.DB) *GormRouteTokenRepository {
	return &GormRouteTokenRepository{db: db}
}

// FindByID retrieves a token record by its unique identifier.
func (r *GormRouteTokenRepository) FindByID(ctx context.Context, id uuid.UUID) (*routeDomain.TokenRecord, error) {
	var model RouteTokenModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("RouteToken", id.String())
		}
		return nil, fmt.Errorf("failed to find route token by ID: %w", err)
	}
	return toDomainTokenRecord(&model)
}

// ListAll retrieves all token records, newest first, with pagination.
func (r *GormRouteTokenRepository) ListAll(ctx context.Context, page, limit int) ([]*routeDomain.TokenRecord, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RouteTokenModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count route tokens: %w", err)
	}

	var models []RouteTokenModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list route tokens: %w", err)
	}

	records := make([]*routeDomain.TokenRecord, len(models))
	for i := range models {
		rec, err := toDomainTokenRecord(&models[i])
		if err != nil {
			return nil, 0, err
		}
		records[i] = rec
	}

	return records, total, nil
}

// Save persists a new token record.
func (r *GormRouteTokenRepository) Save(ctx context.Context, rec *routeDomain.TokenRecord) error {
	model, err := toRouteTokenModel(rec)
	if err != nil {
		return fmt.Errorf("failed to convert route token to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save route token: %w", err)
	}
	return nil
}

func toRouteTokenModel(rec *routeDomain.TokenRecord) (*RouteTokenModel, error) {
	origin, err := json.Marshal(rec.Origin())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal origin: %w", err)
	}
	destination, err := json.Marshal(rec.Destination())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal destination: %w", err)
	}
	advisory, err := json.Marshal(rec.TravelAdvisory())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal travel advisory: %w", err)
	}

	return &RouteTokenModel{
		ID:                           rec.ID(),
		RequestID:                    rec.RequestID(),
		RouteToken:                   rec.RouteToken(),
		Origin:                       origin,
		Destination:                  destination,
		TravelAdvisory:               advisory,
		RestrictionsPartiallyIgnored: rec.TravelAdvisory().RestrictionsPartiallyIgnored(),
		CreatedAt:                    rec.CreatedAt(),
	}, nil
}

func toDomainTokenRecord(m *RouteTokenModel) (*routeDomain.TokenRecord, error) {
	var origin, destination routeDomain.Waypoint
	if err := json.Unmarshal(m.Origin, &origin); err != nil {
		return nil, fmt.Errorf("failed to unmarshal origin: %w", err)
	}
	if err := json.Unmarshal(m.Destination, &destination); err != nil {
		return nil, fmt.Errorf("failed to unmarshal destination: %w", err)
	}

	var advisory routeDomain.TravelAdvisory
	if len(m.TravelAdvisory) > 0 {
		if err := json.Unmarshal(m.TravelAdvisory, &advisory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal travel advisory: %w", err)
		}
	}

	return routeDomain.Reconstruct(
		m.ID,
		m.RequestID,
		m.RouteToken,
		origin,
		destination,
		advisory,
		m.CreatedAt,
	), nil
}
