package menu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPath reports a path with no usable segments or an empty
	// segment in a position that cannot hold one.
	ErrInvalidPath = errors.New("invalid menu path")
	// ErrDuplicateMenuEntry reports two non-separator entries resolving to
	// the same place in the tree.
	ErrDuplicateMenuEntry = errors.New("duplicate menu entry")
)

// Kind distinguishes actions from separators in the flat entry list.
type Kind int

const (
	KindAction Kind = iota
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindSeparator:
		return "separator"
	default:
		return "action"
	}
}

// Status is a bit set describing how an action is displayed. The zero value
// hides the entry.
type Status uint8

const (
	StatusNone   Status = 0
	StatusNormal Status = 1 << (iota - 1)
	StatusDisabled
	StatusChecked
	StatusHidden
)

// Hidden reports whether entries carrying the status are left out of the tree.
func (s Status) Hidden() bool {
	return s == StatusNone || s&StatusHidden != 0
}

func (s Status) Disabled() bool { return s&StatusDisabled != 0 }
func (s Status) Checked() bool  { return s&StatusChecked != 0 }

// Entry is one element of the flat list a menu is built from.
type Entry struct {
	Path   string
	Kind   Kind
	Status Status
	Invoke func()
}

// ParsePath splits a slash-delimited path into its non-empty segments.
// Separator paths gain a trailing empty segment, which places the separator
// among the children of the submenu the path names.
func ParsePath(path string, separator bool) ([]string, error) {
	raw := strings.Split(path, "/")
	segments := make([]string, 0, len(raw)+1)
	for _, seg := range raw {
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
	}
	if separator {
		segments = append(segments, "")
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w %q", ErrInvalidPath, path)
	}
	return segments, nil
}

// Build converts entries into a tree rooted at an unnamed submenu. Entry
// order is display order. The first invalid or conflicting entry aborts the
// build.
func Build(entries []Entry) (*Submenu, error) {
	root := &Submenu{}
	for _, entry := range entries {
		if err := root.add(entry); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (s *Submenu) add(entry Entry) error {
	separator := entry.Kind == KindSeparator
	if !separator && entry.Status.Hidden() {
		return nil
	}
	segments, err := ParsePath(entry.Path, separator)
	if err != nil {
		return err
	}
	leaf := newLeaf(entry, segments)
	full := strings.Join(segments, "/")

	current := s
	last := len(segments) - 1
	for i, seg := range segments {
		final := i == last
		if seg == "" {
			current.append(leaf)
			return nil
		}
		existing, found := current.child(seg)
		if !found {
			if final {
				current.append(leaf)
				return nil
			}
			next := &Submenu{Name: seg}
			current.append(next)
			current = next
			continue
		}
		if final && !separator {
			return fmt.Errorf("%w %s", ErrDuplicateMenuEntry, full)
		}
		sub, ok := existing.(*Submenu)
		if !ok {
			return fmt.Errorf("%w %s: %q is not a submenu", ErrDuplicateMenuEntry, full, seg)
		}
		if final {
			sub.append(leaf)
			return nil
		}
		current = sub
	}
	return nil
}

func newLeaf(entry Entry, segments []string) Node {
	name := segments[len(segments)-1]
	if entry.Kind == KindSeparator {
		return &Separator{Name: name}
	}
	return &Action{
		Name:     name,
		Path:     strings.Join(segments, "/"),
		Disabled: entry.Status.Disabled(),
		Checked:  entry.Status.Checked(),
		invoke:   entry.Invoke,
	}
}
