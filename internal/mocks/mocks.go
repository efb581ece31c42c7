// Package mocks contains testify mocks for the interfaces declared in
// model and session.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// KV is a mock of model.KV.
type KV struct {
	mock.Mock
}

func (m *KV) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *KV) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *KV) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// AuthAPI is a mock of session.AuthAPI.
type AuthAPI struct {
	mock.Mock
}

func (m *AuthAPI) Register(ctx context.Context, email, password string) (model.UserProfile, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.UserProfile), args.Error(1)
}

func (m *AuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *AuthAPI) Me(ctx context.Context) (model.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.UserProfile), args.Error(1)
}
