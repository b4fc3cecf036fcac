package topics

// Renderer formats topic content for display. ext is the topic file
// extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer shows topics as they are
type PlainRenderer struct{}

// Render returns content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
