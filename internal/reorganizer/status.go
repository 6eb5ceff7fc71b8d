package reorganizer

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"docreorg/internal/docsite"
	"docreorg/internal/layout"
)

// PageState describes a mapped destination as found on disk.
type PageState string

const (
	PageAbsent      PageState = "absent"
	PagePlaceholder PageState = "placeholder"
	PageAuthored    PageState = "authored"
)

// PageStatus is the on-disk state of one mapped destination.
type PageStatus struct {
	Group string    `json:"group"`
	Path  string    `json:"path"`
	State PageState `json:"state"`
}

// GroupStatus is the on-disk state of one group directory.
type GroupStatus struct {
	Name string `json:"name"`
	// DescriptorCurrent is true when _category_.json matches what a run writes.
	DescriptorCurrent bool         `json:"descriptor_current"`
	Pages             []PageStatus `json:"pages"`
}

// Inspect reports how far destRoot is from what a run of mapping produces
// without changing anything. Placeholders still waiting for content are
// reported separately from authored pages.
func Inspect(mapping layout.Mapping, destRoot string) ([]GroupStatus, error) {
	out := make([]GroupStatus, 0, len(mapping))
	for _, group := range mapping {
		groupDir := filepath.Join(destRoot, group.Name)
		current, err := descriptorCurrent(group.Name, filepath.Join(groupDir, docsite.CategoryFile))
		if err != nil {
			return nil, err
		}
		status := GroupStatus{Name: group.Name, DescriptorCurrent: current}
		for _, rule := range group.Rules {
			path := filepath.Join(groupDir, rule.Destination())
			state, err := pageState(path)
			if err != nil {
				return nil, err
			}
			status.Pages = append(status.Pages, PageStatus{Group: group.Name, Path: path, State: state})
		}
		out = append(out, status)
	}
	return out, nil
}

func pageState(path string) (PageState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PageAbsent, nil
		}
		return "", ioFailure("read page", path, err)
	}
	if docsite.IsPlaceholder(data) {
		return PagePlaceholder, nil
	}
	return PageAuthored, nil
}

func descriptorCurrent(group, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, ioFailure("read descriptor", path, err)
	}
	var found docsite.Category
	if err := json.Unmarshal(data, &found); err != nil {
		return false, nil
	}
	return found == docsite.NewCategory(group), nil
}
