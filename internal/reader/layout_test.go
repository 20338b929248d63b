// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLayout_SingleMode(t *testing.T) {
	layout := ComputeLayout(LayoutInput{
		ContainerWidth:  1000,
		ContainerHeight: 800,
		Scale:           1.0,
		ViewMode:        ViewModeSingle,
		CurrentPage:     4,
		TotalPages:      10,
		Kind:            KindPaginated,
	})

	require.Len(t, layout.Pages, 1)
	assert.False(t, layout.SpreadActive)
	assert.Equal(t, 4, layout.Pages[0].PageNumber)
	// (1000 - 32) * 0.9 * 1.0 = 871.2, below the 1200 cap
	assert.InDelta(t, 871.2, layout.Pages[0].TargetWidth, 0.001)
	assert.Nil(t, layout.Pages[0].TargetHeight)
}

func TestComputeLayout_SingleModeWidthCap(t *testing.T) {
	layout := ComputeLayout(LayoutInput{
		ContainerWidth: 2400,
		Scale:          1.0,
		ViewMode:       ViewModeSingle,
		CurrentPage:    1,
		TotalPages:     10,
		Kind:           KindPaginated,
	})

	assert.Equal(t, singlePageMaxWidth, layout.Pages[0].TargetWidth)
}

func TestComputeLayout_SpreadComposition(t *testing.T) {
	layout := ComputeLayout(LayoutInput{
		ContainerWidth: 1400,
		Scale:          1.0,
		ViewMode:       ViewModeSpread,
		CurrentPage:    4,
		TotalPages:     10,
		Kind:           KindPaginated,
	})

	require.Len(t, layout.Pages, 2)
	assert.True(t, layout.SpreadActive)
	assert.Equal(t, 4, layout.Pages[0].PageNumber)
	assert.Equal(t, 5, layout.Pages[1].PageNumber)
	// (1400 - 32) / 2 = 684 per page, below the 800 cap
	assert.InDelta(t, 684.0, layout.Pages[0].TargetWidth, 0.001)
	assert.Equal(t, layout.Pages[0].TargetWidth, layout.Pages[1].TargetWidth)
}

func TestComputeLayout_SpreadPerPageWidthCap(t *testing.T) {
	layout := ComputeLayout(LayoutInput{
		ContainerWidth: 4000,
		Scale:          1.0,
		ViewMode:       ViewModeSpread,
		CurrentPage:    2,
		TotalPages:     10,
		Kind:           KindPaginated,
	})

	require.Len(t, layout.Pages, 2)
	assert.Equal(t, spreadPageMaxWidth, layout.Pages[0].TargetWidth)
}

func TestComputeLayout_CoverPageNeverSpreads(t *testing.T) {
	layout := ComputeLayout(LayoutInput{
		ContainerWidth: 1400,
		Scale:          1.0,
		ViewMode:       ViewModeSpread,
		CurrentPage:    1,
		TotalPages:     10,
		Kind:           KindPaginated,
	})

	require.Len(t, layout.Pages, 1)
	assert.False(t, layout.SpreadActive)
}

func TestComputeLayout_SpreadSuppressesMissingRightPage(t *testing.T) {
	layout := ComputeLayout(LayoutInput{
		ContainerWidth: 1400,
		Scale:          1.0,
		ViewMode:       ViewModeSpread,
		CurrentPage:    10,
		TotalPages:     10,
		Kind:           KindPaginated,
	})

	require.Len(t, layout.Pages, 1)
	assert.Equal(t, 10, layout.Pages[0].PageNumber)
}

func TestComputeLayout_StaticImageNeverSpreads(t *testing.T) {
	layout := ComputeLayout(LayoutInput{
		ContainerWidth: 1400,
		Scale:          1.0,
		ViewMode:       ViewModeSpread,
		CurrentPage:    1,
		TotalPages:     1,
		Kind:           KindStaticImage,
	})

	require.Len(t, layout.Pages, 1)
	assert.False(t, layout.SpreadActive)
}

func TestComputeLayout_PresentationModeHeightConstrains(t *testing.T) {
	layout := ComputeLayout(LayoutInput{
		ContainerWidth:  1000,
		ContainerHeight: 720,
		Scale:           1.0,
		ViewMode:        ViewModeSingle,
		CurrentPage:     1,
		TotalPages:      5,
		Presentation:    true,
		Kind:            KindPaginated,
	})

	require.Len(t, layout.Pages, 1)
	require.NotNil(t, layout.Pages[0].TargetHeight)
	assert.InDelta(t, 720-presentationHeightInset, *layout.Pages[0].TargetHeight, 0.001)
	// Presentation mode reserves near-zero padding: (1000 - 4) * 0.9
	assert.InDelta(t, 896.4, layout.Pages[0].TargetWidth, 0.001)
}

func TestComputeLayout_ScaleInfluencesWidth(t *testing.T) {
	base := ComputeLayout(LayoutInput{
		ContainerWidth: 1000, Scale: 1.0, ViewMode: ViewModeSingle,
		CurrentPage: 1, TotalPages: 5, Kind: KindPaginated,
	})
	zoomed := ComputeLayout(LayoutInput{
		ContainerWidth: 1000, Scale: 0.5, ViewMode: ViewModeSingle,
		CurrentPage: 1, TotalPages: 5, Kind: KindPaginated,
	})

	assert.InDelta(t, base.Pages[0].TargetWidth/2, zoomed.Pages[0].TargetWidth, 0.001)
}

func TestAutoViewMode(t *testing.T) {
	assert.Equal(t, ViewModeSpread, AutoViewMode(1400, KindPaginated))
	assert.Equal(t, ViewModeSpread, AutoViewMode(SpreadBreakpoint, KindPaginated))
	assert.Equal(t, ViewModeSingle, AutoViewMode(1199, KindPaginated))
	assert.Equal(t, ViewModeSingle, AutoViewMode(1400, KindStaticImage))
}

func TestClampScale(t *testing.T) {
	assert.Equal(t, ZoomMin, ClampScale(0.05))
	assert.Equal(t, ZoomMax, ClampScale(4.2))
	assert.Equal(t, 1.3, ClampScale(1.3))
}
