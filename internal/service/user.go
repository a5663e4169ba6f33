package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Skotchmaster/restaurant_ordering/internal/events"
	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
)

const (
	DefaultUsersLimit = 100
	MaxUsersLimit     = 500
)

type UserService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *UserService) ListUsers(ctx context.Context, offset, limit int) (int64, []models.UserRow, error) {
	if offset < 0 || limit < 0 {
		return 0, nil, invalid("limit and offset must not be negative")
	}
	if limit == 0 {
		limit = DefaultUsersLimit
	}
	limit = min(limit, MaxUsersLimit)
	return s.Repo.ListUsers(ctx, offset, limit)
}

func (s *UserService) UpdateUser(ctx context.Context, req transport.UserUpdateRequest) (*models.User, error) {
	if req.ID.Value() == 0 {
		return nil, invalid("User ID is required")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, invalid("Full name is required")
	}

	user, err := s.Repo.UpdateUser(ctx, req.ID.Value(), req.FullName, req.Phone)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("user %d", req.ID.Value()))
	}
	publish(ctx, s.Events, events.TopicUser, strconv.FormatUint(uint64(user.ID), 10), events.UserUpdated, user)
	return user, nil
}
