// Package mocks holds testify mocks for the domain contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/parlour-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/parlour-booking/internal/domain/parlour"
	"github.com/BruksfildServices01/parlour-booking/internal/domain/user"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// ======================================================
// User repository
// ======================================================

type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	args := m.Called(ctx, email, passwordHash)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) SetAdmin(ctx context.Context, id uint, admin bool) error {
	return m.Called(ctx, id, admin).Error(0)
}

// ======================================================
// Parlour repository
// ======================================================

type MockParlourRepository struct {
	mock.Mock
}

func NewMockParlourRepository(t testingT) *MockParlourRepository {
	m := &MockParlourRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockParlourRepository) CreateParlour(ctx context.Context, p *models.Parlour) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParlourRepository) ListParlours(ctx context.Context) ([]models.Parlour, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Parlour)
	return out, args.Error(1)
}

func (m *MockParlourRepository) ParlourExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockParlourRepository) CreateService(ctx context.Context, s *models.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockParlourRepository) ListServicesForParlour(ctx context.Context, parlourID uint) ([]models.Service, error) {
	args := m.Called(ctx, parlourID)
	out, _ := args.Get(0).([]models.Service)
	return out, args.Error(1)
}

// ======================================================
// Appointment repository
// ======================================================

type MockAppointmentRepository struct {
	mock.Mock
}

func NewMockAppointmentRepository(t testingT) *MockAppointmentRepository {
	m := &MockAppointmentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAppointmentRepository) ParlourExists(ctx context.Context, parlourID uint) (bool, error) {
	args := m.Called(ctx, parlourID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *MockAppointmentRepository) ListAppointmentsForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]models.Appointment)
	return out, args.Error(1)
}

func (m *MockAppointmentRepository) DeleteAppointmentForUser(ctx context.Context, appointmentID, userID uint) (bool, error) {
	args := m.Called(ctx, appointmentID, userID)
	return args.Bool(0), args.Error(1)
}

var (
	_ user.Repository        = (*MockUserRepository)(nil)
	_ parlour.Repository     = (*MockParlourRepository)(nil)
	_ appointment.Repository = (*MockAppointmentRepository)(nil)
)
