package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/ledgertree/pkg/tree"
)

// Mode selects how accounts are grouped into a forest.
type Mode int

const (
	// ModeFlat lists every account at the top level.
	ModeFlat Mode = iota
	// ModeParent nests accounts under the parent set by the user.
	ModeParent
	// ModeType groups accounts under their kind.
	ModeType
	// ModeInstitution groups accounts under their institution.
	ModeInstitution
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown grouping mode")

// UnknownGroup names the group of accounts without an institution or kind.
const UnknownGroup = "Unknown"

// Modes lists all grouping modes in menu order.
var Modes = []Mode{ModeFlat, ModeParent, ModeType, ModeInstitution}

// String returns the mode name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeParent:
		return "parent"
	case ModeType:
		return "type"
	case ModeInstitution:
		return "institution"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Title returns a human label for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeFlat:
		return "Flat list"
	case ModeParent:
		return "Parent account"
	case ModeType:
		return "Account type"
	case ModeInstitution:
		return "Institution"
	default:
		return m.String()
	}
}

// ParseMode parses a mode name. Matching is case-insensitive and accepts a
// few aliases ("user", "kind", "bank").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "":
		return ModeFlat, nil
	case "parent", "user":
		return ModeParent, nil
	case "type", "kind":
		return ModeType, nil
	case "institution", "bank":
		return ModeInstitution, nil
	}
	return ModeFlat, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// GroupKey identifies a node of an account forest: an account id, or the
// name of a synthesized group.
type GroupKey struct {
	ID    ID
	Group string
}

// Nodes tells BuildTree how to read and create the caller's node data.
type Nodes[T any] struct {
	// Account returns the account behind an item, nil for placeholders.
	Account func(T) *Account

	// Name returns the display name of an item without an account.
	Name func(T) string

	// Placeholder creates the data of a synthesized parent. In ModeParent
	// the parent account is passed and name is empty; in categorical modes
	// the account is nil and name is the group.
	Placeholder func(a *Account, name string) T
}

// BuildTree arranges items into a forest according to mode.
//
// In ModeParent a parent that exists in list but is not part of items is
// synthesized from the real account, so filtered views keep their nesting.
// A parent id that is not in list leaves the account at the top level. In
// ModeType and ModeInstitution one placeholder is created per group name.
func BuildTree[T any](list *List, items []T, mode Mode, n Nodes[T]) []*tree.Node[T] {
	b := tree.Builder[T, GroupKey]{
		Key: func(item T) (GroupKey, bool) {
			a := n.Account(item)
			if a == nil {
				return GroupKey{}, false
			}
			return GroupKey{ID: a.ID}, true
		},
		Compare: func(x, y T) int {
			ax, ay := n.Account(x), n.Account(y)
			if ax == nil && ay == nil && n.Name != nil {
				return CompareNames(n.Name(x), n.Name(y))
			}
			return Compare(ax, ay)
		},
	}

	switch mode {
	case ModeParent:
		b.ParentKey = func(item T) (GroupKey, bool) {
			a := n.Account(item)
			if a == nil || a.ParentID == 0 {
				return GroupKey{}, false
			}
			return GroupKey{ID: a.ParentID}, true
		}
		b.Placeholder = func(k GroupKey) (T, bool) {
			var zero T
			parent, ok := list.Get(k.ID)
			if !ok || n.Placeholder == nil {
				return zero, false
			}
			return n.Placeholder(parent, ""), true
		}

	case ModeType, ModeInstitution:
		group := kindGroup
		if mode == ModeInstitution {
			group = institutionGroup
		}
		b.ParentKey = func(item T) (GroupKey, bool) {
			a := n.Account(item)
			if a == nil {
				return GroupKey{}, false
			}
			return GroupKey{Group: group(a)}, true
		}
		b.Placeholder = func(k GroupKey) (T, bool) {
			var zero T
			if n.Placeholder == nil {
				return zero, false
			}
			return n.Placeholder(nil, k.Group), true
		}
	}

	return b.Build(items)
}

func kindGroup(a *Account) string {
	if a.Kind == nil || a.Kind.Name == "" {
		return UnknownGroup
	}
	return a.Kind.Name
}

func institutionGroup(a *Account) string {
	if inst := a.Institution(); inst != nil && inst.Name != "" {
		return inst.Name
	}
	return UnknownGroup
}
