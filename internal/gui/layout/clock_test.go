package layout

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockObjects() []fyne.CanvasObject {
	accent := canvas.NewRectangle(color.Black)
	return []fyne.CanvasObject{
		canvas.NewRectangle(color.White),
		canvas.NewRectangle(color.Gray{Y: 0xe5}),
		canvas.NewRectangle(color.White),
		canvas.NewText("12:00:00", color.Black),
		accent,
		canvas.NewText("caption", color.Black),
	}
}

func TestPanelBounds(t *testing.T) {
	pos, size := PanelBounds(fyne.NewSize(532, 332))

	assert.InDelta(t, 460.0, size.Width, 0.01)
	assert.InDelta(t, 216.0, size.Height, 0.01)
	assert.InDelta(t, 36.0, pos.X, 0.01)
	assert.InDelta(t, 58.0, pos.Y, 0.01)
}

func TestPanelBoundsTinyWindow(t *testing.T) {
	pos, size := PanelBounds(fyne.NewSize(10, 10))

	assert.Zero(t, size.Width)
	assert.Zero(t, size.Height)
	assert.Equal(t, float32(OuterMargin), pos.X)
}

func TestClockLayoutPlacesObjects(t *testing.T) {
	test.NewTempApp(t)
	objects := clockObjects()
	size := fyne.NewSize(532, 332)

	NewClockLayout(nil).Layout(objects, size)

	panelPos, panelSize := PanelBounds(size)
	assert.Equal(t, size, objects[IndexBackground].Size())
	assert.Equal(t, panelPos, objects[IndexSurface].Position())
	assert.Equal(t, panelSize, objects[IndexSurface].Size())
	assert.Equal(t, panelPos.Y+ShadowOffset, objects[IndexShadow].Position().Y)

	timeObj := objects[IndexTime]
	assert.Equal(t, panelPos.Y+TimePadTop, timeObj.Position().Y)
	assert.Equal(t, panelPos.X+TimePadX, timeObj.Position().X)

	accent := objects[IndexAccent]
	assert.Equal(t, timeObj.Position().Y+timeObj.Size().Height+TimePadBottom, accent.Position().Y)
	assert.Equal(t, float32(AccentHeight), accent.Size().Height)
	assert.InDelta(t, panelSize.Width-2*AccentInset, accent.Size().Width, 0.01)

	caption := objects[IndexCaption]
	assert.Equal(t, accent.Position().Y+AccentHeight+AccentPadBottom, caption.Position().Y)
}

func TestClockLayoutReportsResizeFirst(t *testing.T) {
	test.NewTempApp(t)
	objects := clockObjects()
	var got []fyne.Size

	cl := NewClockLayout(func(size fyne.Size) {
		got = append(got, size)
		// growing the text here must be reflected in the same pass
		objects[IndexTime].(*canvas.Text).TextSize = 80
	})
	cl.Layout(objects, fyne.NewSize(600, 400))

	require.Len(t, got, 1)
	assert.Equal(t, fyne.NewSize(600, 400), got[0])
	assert.Equal(t, objects[IndexTime].MinSize().Height, objects[IndexTime].Size().Height)
}

func TestClockLayoutToleratesShortObjectList(t *testing.T) {
	called := false
	cl := NewClockLayout(func(fyne.Size) { called = true })

	assert.NotPanics(t, func() { cl.Layout(nil, fyne.NewSize(400, 300)) })
	assert.True(t, called)
	assert.Equal(t, fyne.NewSize(MinWidth, MinHeight), cl.MinSize(nil))
}
