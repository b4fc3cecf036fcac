package terminal_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/types"
	"github.com/arthur-debert/cleaner/pkg/ui/terminal"
)

// Without color support the styled output has the plain text layout
func TestRendererLayout(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	r := terminal.New(&buf)

	require.NoError(t, r.RenderResult(types.ArtifactItem{Platform: "Rust", Display: "app/target", Width: 6, Removed: true}))
	require.NoError(t, r.RenderResult(types.ReportLine{Line: "app - Err: broken"}))
	require.NoError(t, r.RenderResult(types.PlatformListing{Platforms: []platforms.ListingEntry{
		{Name: "Rust", Folders: []string{"target"}, Associated: []string{"Cargo.toml"}, Marker: platforms.MarkDuplicate},
	}}))

	assert.Equal(t, "  - [Rust  ] app/target - removed\n"+
		"app - Err: broken\n"+
		"Platform: Rust <<= duplicate platform name\n  Build Artifacts: target\n  Matched On: Cargo.toml\n", buf.String())
}
