package mocks

import (
	"context"

	"github.com/cinesala/auditorium/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockStateRepo struct {
	mock.Mock
	domain.StateRepository
}

func (m *MockStateRepo) Save(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockStateRepo) Load(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
