package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Skotchmaster/restaurant_ordering/internal/events"
	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/pkg/hash"
)

type StaffService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *StaffService) ListStaff(ctx context.Context) ([]models.StaffRow, error) {
	return s.Repo.ListStaff(ctx)
}

func (s *StaffService) CreateStaff(ctx context.Context, req transport.StaffRequest) (*models.Staff, error) {
	if strings.TrimSpace(req.StaffID) == "" || strings.TrimSpace(req.FullName) == "" ||
		strings.TrimSpace(req.Role) == "" || req.Password == "" {
		return nil, invalid("All fields are required")
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash staff password: %w", err)
	}

	member := &models.Staff{
		StaffID:      strings.ToUpper(req.StaffID),
		FullName:     req.FullName,
		Role:         req.Role,
		PasswordHash: pwHash,
		IsActive:     true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	created, err := s.Repo.CreateStaff(ctx, member)
	if err != nil {
		return nil, storeErr(err, "staff id "+member.StaffID)
	}
	publish(ctx, s.Events, events.TopicStaff, created.StaffID, events.StaffCreated, created)
	return created, nil
}

func (s *StaffService) UpdateStaff(ctx context.Context, req transport.StaffRequest) (*models.Staff, error) {
	if req.ID.Value() == 0 {
		return nil, invalid("Staff ID is required")
	}
	if strings.TrimSpace(req.StaffID) == "" || strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Role) == "" {
		return nil, invalid("All fields are required")
	}

	member := &models.Staff{
		ID:       req.ID.Value(),
		StaffID:  strings.ToUpper(req.StaffID),
		FullName: req.FullName,
		Role:     req.Role,
		IsActive: true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	updated, err := s.Repo.UpdateStaff(ctx, member)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("staff %d", member.ID))
	}
	publish(ctx, s.Events, events.TopicStaff, updated.StaffID, events.StaffUpdated, updated)
	return updated, nil
}
