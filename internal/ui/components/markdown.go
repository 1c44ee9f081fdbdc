// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN BODY RENDERING
// =============================================================================

// The renderer is cached and rebuilt only when the wrap width changes, since
// every bubble at a given terminal size shares the same width.
var (
	mdMu       sync.Mutex
	mdRenderer *glamour.TermRenderer
	mdWidth    int
)

// renderMarkdownBody renders markdown through glamour at the given wrap
// width. Returns false when rendering is unavailable or produced nothing, so
// the caller can fall back to plain wrapping.
func renderMarkdownBody(content string, width int) (string, bool) {
	mdMu.Lock()
	defer mdMu.Unlock()

	if mdRenderer == nil || mdWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", false
		}
		mdRenderer = r
		mdWidth = width
	}

	rendered, err := mdRenderer.Render(content)
	if err != nil {
		return "", false
	}

	rendered = strings.Trim(rendered, "\n")
	if rendered == "" {
		return "", false
	}
	return rendered, true
}
