// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	versionedmock "github.com/KirkDiggler/delver-sim/internal/repositories/versioned/mock"
)

// ExpectCharacterLoads lets the store return each sheet by id any number of times
func ExpectCharacterLoads(mockStore *versionedmock.MockStore[entities.Character, entities.Character], chars ...*entities.Character) {
	for _, c := range chars {
		mockStore.EXPECT().
			LoadLatest(gomock.Any(), c.ID).
			Return(c, nil).
			AnyTimes()
	}
}

// ExpectTeamLoads lets the store return each sheet by id any number of times
func ExpectTeamLoads(mockStore *versionedmock.MockStore[entities.Team, entities.Team], teams ...*entities.Team) {
	for _, t := range teams {
		mockStore.EXPECT().
			LoadLatest(gomock.Any(), t.ID).
			Return(t, nil).
			AnyTimes()
	}
}

// ExpectSaves expects exactly times successful saves, returning increasing versions
func ExpectSaves[K any, V any](mockStore *versionedmock.MockStore[K, V], times int) *gomock.Call {
	version := 0
	return mockStore.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *V) (int, error) {
			version++
			return version, nil
		}).
		Times(times)
}
