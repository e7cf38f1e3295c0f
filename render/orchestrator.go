package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	frame     *Frame
	renderers []rendererEntry
}

// NewRenderOrchestrator creates an orchestrator drawing a layout onto screen
func NewRenderOrchestrator(screen tcell.Screen, layout Layout) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		frame:     NewFrame(layout.ScreenWidth, layout.ScreenHeight),
		renderers: make([]rendererEntry, 0, 4),
	}
}

// NewGameOrchestrator registers the border, entity and status layers
func NewGameOrchestrator(screen tcell.Screen, layout Layout) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen, layout)
	o.Register(BorderRenderer{}, PriorityBackground)
	o.Register(NewEntityRenderer(), PriorityEntities)
	o.Register(StatusRenderer{}, PriorityUI)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
// Renderers of equal priority run in registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority}

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates frame dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(layout Layout) {
	o.frame.Resize(layout.ScreenWidth, layout.ScreenHeight)
	o.screen.Sync()
}

// Frame returns the last composed screen frame
func (o *RenderOrchestrator) Frame() *Frame {
	return o.frame
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.frame.Clear()
	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.frame)
	}
	FlushToScreen(o.frame, o.screen)
}

// FlushToScreen copies every frame cell to the screen and shows it
func FlushToScreen(f *Frame, screen tcell.Screen) {
	screen.Clear()
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			screen.SetContent(x, y, c.Rune, nil, Style(c.Color))
		}
	}
	screen.Show()
}
