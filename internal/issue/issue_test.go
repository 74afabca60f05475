// SPDX-License-Identifier: MPL-2.0

package issue

import "testing"

func TestGet_KnownIds(t *testing.T) {
	t.Parallel()

	ids := []Id{JavaNotFoundId, LaunchFailedId, MainClassMissingId, ConfigLoadFailedId}
	for _, id := range ids {
		entry := Get(id)
		if entry == nil {
			t.Errorf("Get(%d) = nil, want a catalog entry", id)
			continue
		}
		if entry.Id() != id {
			t.Errorf("Get(%d).Id() = %d, want %d", id, entry.Id(), id)
		}
		if entry.MarkdownMsg() == "" {
			t.Errorf("Get(%d).MarkdownMsg() is empty", id)
		}
	}
}

func TestGet_UnknownId(t *testing.T) {
	t.Parallel()

	if entry := Get(Id(9999)); entry != nil {
		t.Errorf("Get(9999) = %v, want nil", entry)
	}
}

func TestValues_ReturnsAllIssues(t *testing.T) {
	t.Parallel()

	if got := len(Values()); got != len(issues) {
		t.Errorf("len(Values()) = %d, want %d", got, len(issues))
	}
}

func TestRender_UsesRenderer(t *testing.T) {
	// Swaps the package-level renderer; not parallel.
	original := render
	defer func() { render = original }()

	var rendered string
	render = func(in string, _ string) (string, error) {
		rendered = in
		return "rendered", nil
	}

	out, err := Get(JavaNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v, want nil", err)
	}
	if out != "rendered" {
		t.Errorf("Render() = %q, want %q", out, "rendered")
	}
	if rendered == "" {
		t.Error("renderer received empty markdown")
	}
}
