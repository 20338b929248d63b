// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package reader

// # View Modes

// ViewMode selects how pages are composed on screen.
type ViewMode string

const (
	ViewModeSingle ViewMode = "single"
	ViewModeSpread ViewMode = "book-spread"
)

// # Layout Constants

const (
	// Horizontal padding reserved from the container width.
	paddingNormal       = 32.0
	paddingPresentation = 4.0

	// Per-page width cap in spread mode.
	spreadPageMaxWidth = 800.0

	// Page width cap and width share in single mode.
	singlePageMaxWidth  = 1200.0
	singlePageWidthGain = 0.9

	// Height inset in presentation mode, where pages are height-constrained.
	presentationHeightInset = 8.0

	// Container width at which paginated documents switch to spread mode.
	SpreadBreakpoint = 1200.0

	// Zoom bounds and step size.
	ZoomMin  = 0.2
	ZoomMax  = 3.0
	ZoomStep = 0.1
)

// # Layout Computation

// LayoutInput is everything the layout math depends on. The computation is
// a pure function of this struct.
type LayoutInput struct {
	ContainerWidth  float64
	ContainerHeight float64
	Scale           float64
	ViewMode        ViewMode
	CurrentPage     int
	TotalPages      int
	Presentation    bool
	Kind            SourceKind
}

// PageBox is the render geometry for one displayed page.
type PageBox struct {
	PageNumber  int      `json:"page_number"`
	TargetWidth float64  `json:"target_width"`
	// TargetHeight is set only when the page is height-constrained
	// (presentation mode); nil means the renderer derives height from width.
	TargetHeight *float64 `json:"target_height,omitempty"`
}

// Layout is the geometry of the 1 or 2 pages currently displayed.
type Layout struct {
	Pages []PageBox `json:"pages"`

	// SpreadActive reports whether two pages sit side by side.
	SpreadActive bool `json:"spread_active"`
}

/*
ComputeLayout derives the render geometry for the current view.

Description: A two-page spread is attempted only when the view mode is
book-spread, the current page is past the cover, and the source is a
paginated document. In a spread each page receives half the available
width times scale, capped per page; the right-hand page joins only while
it exists. Single mode gives the page 90% of the available width times
scale, capped, and presentation mode height-constrains it instead.
*/
func ComputeLayout(input LayoutInput) Layout {
	padding := paddingNormal
	if input.Presentation {
		padding = paddingPresentation
	}

	available := input.ContainerWidth - padding
	if available < 0 {
		available = 0
	}

	spread := input.ViewMode == ViewModeSpread &&
		input.CurrentPage > 1 &&
		input.Kind == KindPaginated

	if spread {
		pageWidth := min(available/2*input.Scale, spreadPageMaxWidth)

		pages := []PageBox{{PageNumber: input.CurrentPage, TargetWidth: pageWidth}}
		if input.CurrentPage+1 <= input.TotalPages {
			pages = append(pages, PageBox{PageNumber: input.CurrentPage + 1, TargetWidth: pageWidth})
		}

		return Layout{Pages: pages, SpreadActive: true}
	}

	single := PageBox{
		PageNumber:  input.CurrentPage,
		TargetWidth: min(available*singlePageWidthGain*input.Scale, singlePageMaxWidth),
	}

	if input.Presentation {
		height := input.ContainerHeight - presentationHeightInset
		if height < 0 {
			height = 0
		}
		single.TargetHeight = &height
	}

	return Layout{Pages: []PageBox{single}}
}

// AutoViewMode picks the view mode for a container width. Only paginated
// documents ever switch to spread; static images always render single.
func AutoViewMode(containerWidth float64, kind SourceKind) ViewMode {
	if kind == KindPaginated && containerWidth >= SpreadBreakpoint {
		return ViewModeSpread
	}
	return ViewModeSingle
}

// ClampScale bounds a zoom factor to the supported range.
func ClampScale(scale float64) float64 {
	if scale < ZoomMin {
		return ZoomMin
	}
	if scale > ZoomMax {
		return ZoomMax
	}
	return scale
}
