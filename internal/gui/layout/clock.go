package layout

import (
	"fyne.io/fyne/v2"
)

const (
	OuterMargin      = 16
	PanelWidthRatio  = 0.92
	PanelHeightRatio = 0.72
	ShadowOffset     = 6

	TimePadX      = 24
	TimePadTop    = 28
	TimePadBottom = 8

	AccentHeight    = 4
	AccentInset     = 64
	AccentPadBottom = 24

	MinWidth  = 360
	MinHeight = 220
)

// Object order expected by ClockLayout.
const (
	IndexBackground = iota
	IndexShadow
	IndexSurface
	IndexTime
	IndexAccent
	IndexCaption

	objectCount
)

// ClockLayout places the clock face: a full-size background, a centered
// surface panel with a shadow offset below it, and the time, accent bar and
// caption stacked from the top of the panel. Every Layout pass is also the
// window's resize notification, reported before positions are computed so a
// changed text size is taken into account.
type ClockLayout struct {
	onResize func(size fyne.Size)
}

var _ fyne.Layout = (*ClockLayout)(nil)

func NewClockLayout(onResize func(size fyne.Size)) *ClockLayout {
	return &ClockLayout{onResize: onResize}
}

func (cl *ClockLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if cl.onResize != nil {
		cl.onResize(containerSize)
	}

	if len(objects) < objectCount {
		return
	}

	objects[IndexBackground].Move(fyne.NewPos(0, 0))
	objects[IndexBackground].Resize(containerSize)

	panelPos, panelSize := PanelBounds(containerSize)

	objects[IndexShadow].Move(panelPos.AddXY(0, ShadowOffset))
	objects[IndexShadow].Resize(panelSize)
	objects[IndexSurface].Move(panelPos)
	objects[IndexSurface].Resize(panelSize)

	y := panelPos.Y + TimePadTop
	timeHeight := objects[IndexTime].MinSize().Height
	objects[IndexTime].Move(fyne.NewPos(panelPos.X+TimePadX, y))
	objects[IndexTime].Resize(fyne.NewSize(nonNegative(panelSize.Width-2*TimePadX), timeHeight))
	y += timeHeight + TimePadBottom

	objects[IndexAccent].Move(fyne.NewPos(panelPos.X+AccentInset, y))
	objects[IndexAccent].Resize(fyne.NewSize(nonNegative(panelSize.Width-2*AccentInset), AccentHeight))
	y += AccentHeight + AccentPadBottom

	captionHeight := objects[IndexCaption].MinSize().Height
	objects[IndexCaption].Move(fyne.NewPos(panelPos.X, y))
	objects[IndexCaption].Resize(fyne.NewSize(panelSize.Width, captionHeight))
}

func (cl *ClockLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(MinWidth, MinHeight)
}

// PanelBounds returns the surface panel geometry for a window content size.
func PanelBounds(size fyne.Size) (fyne.Position, fyne.Size) {
	outerW := nonNegative(size.Width - 2*OuterMargin)
	outerH := nonNegative(size.Height - 2*OuterMargin)

	panel := fyne.NewSize(outerW*PanelWidthRatio, outerH*PanelHeightRatio)
	pos := fyne.NewPos(
		OuterMargin+(outerW-panel.Width)/2,
		OuterMargin+(outerH-panel.Height)/2,
	)
	return pos, panel
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
