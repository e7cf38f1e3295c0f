package render

// SystemRenderer draws one layer of the screen frame
type SystemRenderer interface {
	Render(ctx RenderContext, f *Frame)
}
