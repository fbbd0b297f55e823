package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
	"github.com/zprintln/AdMaxxer-Project/internal/service"
)

// MockGenerationService is a mock type for the GenerationService type
type MockGenerationService struct {
	mock.Mock
}

// GenerateStoryboard provides a mock function with given fields: ctx, brief, style
func (_m *MockGenerationService) GenerateStoryboard(ctx context.Context, brief models.StructuredBrief, style models.CreatorStyle) (models.Storyboard, error) {
	ret := _m.Called(ctx, brief, style)

	var r0 models.Storyboard
	if rf, ok := ret.Get(0).(func(context.Context, models.StructuredBrief, models.CreatorStyle) models.Storyboard); ok {
		r0 = rf(ctx, brief, style)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Storyboard)
	}

	return r0, ret.Error(1)
}

// RegenerateScene provides a mock function with given fields: ctx, req
func (_m *MockGenerationService) RegenerateScene(ctx context.Context, req service.SceneRegenerationRequest) (models.Scene, error) {
	ret := _m.Called(ctx, req)

	var r0 models.Scene
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Scene)
	}

	return r0, ret.Error(1)
}

// AnalyzeCreatorStyle provides a mock function with given fields: ctx, handle
func (_m *MockGenerationService) AnalyzeCreatorStyle(ctx context.Context, handle string) (models.CreatorStyle, error) {
	ret := _m.Called(ctx, handle)

	var r0 models.CreatorStyle
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.CreatorStyle)
	}

	return r0, ret.Error(1)
}

// GenerateSceneImage provides a mock function with given fields: ctx, description, opts
func (_m *MockGenerationService) GenerateSceneImage(ctx context.Context, description string, opts models.ImageOptions) (models.PreviewResult, error) {
	ret := _m.Called(ctx, description, opts)

	var r0 models.PreviewResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.PreviewResult)
	}

	return r0, ret.Error(1)
}

// GenerateSceneVideo provides a mock function with given fields: ctx, description, seconds, opts
func (_m *MockGenerationService) GenerateSceneVideo(ctx context.Context, description string, seconds int, opts models.ImageOptions) (models.PreviewResult, error) {
	ret := _m.Called(ctx, description, seconds, opts)

	var r0 models.PreviewResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.PreviewResult)
	}

	return r0, ret.Error(1)
}

// NewMockGenerationService creates a new instance of MockGenerationService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGenerationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGenerationService {
	m := &MockGenerationService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.GenerationService = (*MockGenerationService)(nil)
