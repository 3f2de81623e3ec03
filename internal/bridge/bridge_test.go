package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/genricoloni/mediastage/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func video(id string) *domain.MediaItem {
	return &domain.MediaItem{ID: id, Kind: domain.KindVideo, Source: id + ".mp4", Range: domain.TimeRange{End: 10}}
}

// TestBind_SwapReleasesBeforeOpening verifies the teardown ordering on item swap:
// the previous element is paused and released strictly before the next one is opened.
func TestBind_SwapReleasesBeforeOpening(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockElementFactory(ctrl)
	first := mocks.NewMockMediaElement(ctrl)
	second := mocks.NewMockMediaElement(ctrl)

	gomock.InOrder(
		factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(first, nil),
		first.EXPECT().Pause(),
		first.EXPECT().Release().Return(nil),
		factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(second, nil),
	)

	b := New(zap.NewNop(), factory)
	ctx := context.Background()
	if err := b.Bind(ctx, video("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Bind(ctx, video("b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Element() != second {
		t.Error("expected the second element to be bound")
	}
}

func TestBind_SameItemKeepsElement(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockElementFactory(ctrl)
	el := mocks.NewMockMediaElement(ctrl)

	factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(el, nil).Times(1)

	b := New(zap.NewNop(), factory)
	item := video("a")
	_ = b.Bind(context.Background(), item)

	edited := *item
	edited.Size.Width = 500
	if err := b.Bind(context.Background(), &edited); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBind_OpenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockElementFactory(ctrl)
	factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, errors.New("decode failed"))

	b := New(zap.NewNop(), factory)
	err := b.Bind(context.Background(), video("a"))
	if err == nil {
		t.Fatal("expected error")
	}
	if b.Element() != nil {
		t.Error("no element must be bound after a failed open")
	}
	// without an element, sync and play degrade quietly
	if b.Sync(3) {
		t.Error("sync without element must not seek")
	}
	if !b.SetPlaying(context.Background(), true) {
		t.Error("logical clock should keep running without a native element")
	}
}

func TestSetPlaying(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(el *mocks.MockMediaElement)
		expected  bool
	}{
		{
			name: "Success - Element Plays",
			setupMock: func(el *mocks.MockMediaElement) {
				el.EXPECT().Play(gomock.Any()).Return(nil)
			},
			expected: true,
		},
		{
			name: "Rejected - Swallowed And Paused",
			setupMock: func(el *mocks.MockMediaElement) {
				el.EXPECT().Play(gomock.Any()).Return(errors.New("autoplay rejected"))
				el.EXPECT().Pause()
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			factory := mocks.NewMockElementFactory(ctrl)
			el := mocks.NewMockMediaElement(ctrl)
			factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(el, nil)
			tt.setupMock(el)

			b := New(zap.NewNop(), factory)
			_ = b.Bind(context.Background(), video("a"))

			if got := b.SetPlaying(context.Background(), true); got != tt.expected {
				t.Errorf("SetPlaying(true) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSetPlaying_OnlyTransitionsReachElement(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockElementFactory(ctrl)
	el := mocks.NewMockMediaElement(ctrl)
	factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(el, nil)

	el.EXPECT().Play(gomock.Any()).Return(nil).Times(1)
	el.EXPECT().Pause().Times(1)

	b := New(zap.NewNop(), factory)
	ctx := context.Background()
	_ = b.Bind(ctx, video("a"))

	b.SetPlaying(ctx, true)
	b.SetPlaying(ctx, true)
	b.SetPlaying(ctx, false)
	b.SetPlaying(ctx, false)
}

func TestSetPlaying_ImageIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockElementFactory(ctrl)
	el := mocks.NewMockMediaElement(ctrl)
	factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(el, nil)

	b := New(zap.NewNop(), factory)
	_ = b.Bind(context.Background(), &domain.MediaItem{ID: "img", Kind: domain.KindImage})

	// no Play/Position expectations: any call would fail the test
	b.SetPlaying(context.Background(), true)
	b.Sync(4)
}

func TestSync_DriftThreshold(t *testing.T) {
	tests := []struct {
		name       string
		elementPos float64
		logical    float64
		expectSeek bool
	}{
		{"In Sync", 3.0, 3.0, false},
		{"Small Drift Tolerated", 3.0, 3.09, false},
		{"Half Threshold Tolerated", 3.0, 3.05, false},
		{"Ahead Beyond Threshold", 3.5, 3.0, true},
		{"Behind Beyond Threshold", 1.0, 3.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			factory := mocks.NewMockElementFactory(ctrl)
			el := mocks.NewMockMediaElement(ctrl)
			factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(el, nil)

			el.EXPECT().Position().Return(tt.elementPos)
			if tt.expectSeek {
				el.EXPECT().SetPosition(tt.logical)
			}

			b := New(zap.NewNop(), factory)
			_ = b.Bind(context.Background(), video("a"))

			if got := b.Sync(tt.logical); got != tt.expectSeek {
				t.Errorf("Sync() = %v, want %v", got, tt.expectSeek)
			}
		})
	}
}

func TestClose_ReleasesElement(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockElementFactory(ctrl)
	el := mocks.NewMockMediaElement(ctrl)
	factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(el, nil)
	gomock.InOrder(
		el.EXPECT().Pause(),
		el.EXPECT().Release().Return(errors.New("already released")),
	)

	b := New(zap.NewNop(), factory)
	_ = b.Bind(context.Background(), video("a"))
	b.Close()
	if b.Element() != nil {
		t.Error("element must be dropped after close")
	}
	b.Close()
}
