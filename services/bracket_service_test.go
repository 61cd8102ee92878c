package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/padel-live/apiclient"
	"github.com/Dosada05/padel-live/models"
)

func TestBracketService_LayoutUsesDisplaySettings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockBackendAPI(ctrl)
	api.EXPECT().ListRounds(gomock.Any(), 9, "token").Return(byeBracket(), nil)
	store := NewMockDisplaySettingsStore(ctrl)
	store.EXPECT().GetByTournamentID(gomock.Any(), 9).Return(&models.DisplaySettings{TournamentID: 9, HideByes: true}, nil)

	svc := NewBracketService(api, NewDisplayService(api, store), nil, nil)

	layout, err := svc.Layout(context.Background(), 9, "token", nil)
	require.NoError(t, err)

	require.Len(t, layout.Rounds, 2)
	assert.True(t, layout.HideByes)
	assert.False(t, layout.IsPreview)
	assert.Equal(t, "Semifinals", layout.Rounds[0].Name)
	assert.Equal(t, 0.0, layout.Rounds[0].Matches[0].Y)
	assert.Equal(t, 0.0, layout.Rounds[0].Matches[1].Y)
	// The final collapses onto its only real parent.
	assert.Equal(t, 0.0, layout.Rounds[1].Matches[0].Y)
}

func TestBracketService_LayoutOverride(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockBackendAPI(ctrl)
	api.EXPECT().ListRounds(gomock.Any(), 9, "").Return(byeBracket(), nil)

	// The store is not consulted when the caller decides.
	svc := NewBracketService(api, NewDisplayService(api, NewMockDisplaySettingsStore(ctrl)), nil, nil)

	layout, err := svc.Layout(context.Background(), 9, "", boolPtr(false))
	require.NoError(t, err)

	assert.False(t, layout.HideByes)
	assert.Equal(t, 0.0, layout.Rounds[0].Matches[0].Y)
	assert.Equal(t, 140.0, layout.Rounds[0].Matches[1].Y)
	assert.Equal(t, 70.0, layout.Rounds[1].Matches[0].Y)
	require.NotNil(t, layout.Rounds[0].Matches[0].GameID)
	assert.Equal(t, 11, *layout.Rounds[0].Matches[0].GameID)
}

func TestBracketService_DisplayFailureFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockBackendAPI(ctrl)
	api.EXPECT().ListRounds(gomock.Any(), 9, "").Return(byeBracket(), nil)
	store := NewMockDisplaySettingsStore(ctrl)
	store.EXPECT().GetByTournamentID(gomock.Any(), 9).Return(nil, errors.New("db down"))

	layout, err := NewBracketService(api, NewDisplayService(api, store), nil, nil).Layout(context.Background(), 9, "", nil)
	require.NoError(t, err)
	assert.False(t, layout.HideByes)
	assert.Equal(t, 70.0, layout.Rounds[1].Matches[0].Y)
}

func TestBracketService_PreviewBeforeDraw(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("skeleton from pairs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		api := NewMockBackendAPI(ctrl)
		api.EXPECT().ListRounds(gomock.Any(), 9, "").Return([]models.Round{}, nil)
		api.EXPECT().ListPlayerPairs(gomock.Any(), 9, "").Return([]models.PlayerPair{
			{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
		}, nil)

		layout, err := NewBracketService(api, nil, nil, nil).Layout(ctx, 9, "", boolPtr(false))
		require.NoError(t, err)

		assert.True(t, layout.IsPreview)
		require.Len(t, layout.Rounds, 2)
		assert.Equal(t, "Final", layout.Rounds[1].Name)
		assert.Equal(t, 70.0, layout.Rounds[1].Matches[0].Y)
	})

	t.Run("too few pairs gives an empty preview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		api := NewMockBackendAPI(ctrl)
		api.EXPECT().ListRounds(gomock.Any(), 9, "").Return(nil, nil)
		api.EXPECT().ListPlayerPairs(gomock.Any(), 9, "").Return([]models.PlayerPair{{ID: 1}}, nil)

		layout, err := NewBracketService(api, nil, nil, nil).Layout(ctx, 9, "", boolPtr(true))
		require.NoError(t, err)
		assert.True(t, layout.IsPreview)
		assert.Empty(t, layout.Rounds)
		assert.Equal(t, 0.0, layout.Height)
	})
}

func TestBracketService_BackendError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockBackendAPI(ctrl)
	api.EXPECT().ListRounds(gomock.Any(), 9, "").Return(nil, apiclient.ErrNotFound)

	_, err := NewBracketService(api, nil, nil, nil).Layout(context.Background(), 9, "", boolPtr(true))
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}
