package jvalue

import (
	"github.com/pkg/errors"
)

// checkLink validates linking item into container n.
func (n *Node) checkLink(item *Node) error {
	switch {
	case n == nil:
		return errors.Wrap(ErrInvalidArgument, "nil container")
	case !n.isContainer():
		return errors.Wrapf(ErrInvalidArgument, "add to %s", n.kind)
	case n.own == borrowed:
		return errors.Wrap(ErrInvalidArgument, "add to a reference container")
	case item == nil:
		return errors.Wrap(ErrInvalidArgument, "nil item")
	case item.kind == Invalid:
		return errors.Wrap(ErrInvalidArgument, "invalid item")
	case item.parent != nil:
		return errors.Wrap(ErrInvalidArgument, "item is already linked")
	}
	for p := n; p != nil; p = p.parent {
		if p == item {
			return errors.Wrap(ErrInvalidArgument, "item contains the container")
		}
	}
	return nil
}

// Append adds item as the last element of an array. The item's member name
// is cleared.
func (n *Node) Append(item *Node) error {
	if err := n.checkLink(item); err != nil {
		return err
	}
	if n.kind != Array {
		return errors.Wrapf(ErrInvalidArgument, "append to %s", n.kind)
	}
	item.name, item.nameConst = "", false
	n.link(item)
	return nil
}

// Add adds item as the last member of an object under name. Duplicate
// names are permitted. On an array the name is ignored and item is
// appended.
func (n *Node) Add(name string, item *Node) error {
	return n.addMember(name, item, false)
}

// AddConst is like Add but marks the member name as constant. A constant
// name is only changed by an explicit rename through Replace.
func (n *Node) AddConst(name string, item *Node) error {
	return n.addMember(name, item, true)
}

func (n *Node) addMember(name string, item *Node, nameConst bool) error {
	if err := n.checkLink(item); err != nil {
		return err
	}
	if n.kind == Array {
		item.name, item.nameConst = "", false
		n.link(item)
		return nil
	}
	if name == "" {
		return errors.Wrap(ErrInvalidArgument, "empty member name")
	}
	item.name, item.nameConst = name, nameConst
	n.link(item)
	return nil
}

// AppendReference appends a new reference to item. Deleting the array
// never releases item.
func (n *Node) AppendReference(item *Node) error {
	if item == nil {
		return errors.Wrap(ErrInvalidArgument, "nil item")
	}
	return n.Append(newReference(item))
}

// AddReference adds a new reference to item under name. Deleting the
// object never releases item.
func (n *Node) AddReference(name string, item *Node) error {
	if item == nil {
		return errors.Wrap(ErrInvalidArgument, "nil item")
	}
	return n.AddConst(name, newReference(item))
}

func (n *Node) addNew(name string, item *Node) *Node {
	if err := n.Add(name, item); err != nil {
		return nil
	}
	return item
}

// AddNull adds a null member and returns it, or nil on failure.
func (n *Node) AddNull(name string) *Node { return n.addNew(name, NewNull()) }

// AddTrue adds a true member and returns it, or nil on failure.
func (n *Node) AddTrue(name string) *Node { return n.addNew(name, NewTrue()) }

// AddFalse adds a false member and returns it, or nil on failure.
func (n *Node) AddFalse(name string) *Node { return n.addNew(name, NewFalse()) }

// AddBool adds a true or false member and returns it, or nil on failure.
func (n *Node) AddBool(name string, b bool) *Node { return n.addNew(name, NewBool(b)) }

// AddNumber adds a number member and returns it, or nil on failure.
func (n *Node) AddNumber(name string, f float64) *Node { return n.addNew(name, NewNumber(f)) }

// AddString adds a string member and returns it, or nil on failure.
func (n *Node) AddString(name, s string) *Node { return n.addNew(name, NewString(s)) }

// AddRaw adds a raw member and returns it, or nil on failure.
func (n *Node) AddRaw(name, raw string) *Node { return n.addNew(name, NewRaw(raw)) }

// AddObject adds an empty object member and returns it, or nil on failure.
func (n *Node) AddObject(name string) *Node { return n.addNew(name, NewObject()) }

// AddArray adds an empty array member and returns it, or nil on failure.
func (n *Node) AddArray(name string) *Node { return n.addNew(name, NewArray()) }

// mutable reports whether the children of n may be changed.
func (n *Node) mutable() bool {
	return n.isContainer() && n.own == owned
}

// DetachItem unlinks item from n and returns it, or returns nil if item is
// not a child of n. The item keeps its subtree and belongs to the caller.
func (n *Node) DetachItem(item *Node) *Node {
	if !n.mutable() || item == nil || item.parent != n {
		return nil
	}
	return n.unlink(item.index)
}

// DetachIndex unlinks and returns the i-th child, or nil.
func (n *Node) DetachIndex(i int) *Node {
	if !n.mutable() {
		return nil
	}
	return n.DetachItem(n.Index(i))
}

// Detach unlinks and returns the first member matching name ignoring ASCII
// case, or nil.
func (n *Node) Detach(name string) *Node {
	if !n.mutable() {
		return nil
	}
	return n.DetachItem(n.Get(name))
}

// DetachCaseSensitive unlinks and returns the first member named exactly
// name, or nil.
func (n *Node) DetachCaseSensitive(name string) *Node {
	if !n.mutable() {
		return nil
	}
	return n.DetachItem(n.GetCaseSensitive(name))
}

// DeleteIndex detaches and releases the i-th child. It reports whether a
// child was removed.
func (n *Node) DeleteIndex(i int) bool {
	return deleteDetached(n.DetachIndex(i))
}

// DeleteMember detaches and releases the first member matching name
// ignoring ASCII case.
func (n *Node) DeleteMember(name string) bool {
	return deleteDetached(n.Detach(name))
}

// DeleteMemberCaseSensitive detaches and releases the first member named
// exactly name.
func (n *Node) DeleteMemberCaseSensitive(name string) bool {
	return deleteDetached(n.DetachCaseSensitive(name))
}

func deleteDetached(item *Node) bool {
	if item == nil {
		return false
	}
	item.release()
	return true
}

// Insert links item into an array at index i, shifting later elements
// right. An index at or past the end appends.
func (n *Node) Insert(i int, item *Node) error {
	if i < 0 {
		return errors.Wrapf(ErrInvalidArgument, "insert at negative index %d", i)
	}
	if err := n.checkLink(item); err != nil {
		return err
	}
	if n.kind != Array {
		return errors.Wrapf(ErrInvalidArgument, "insert into %s", n.kind)
	}
	item.name, item.nameConst = "", false
	if i >= len(n.children) {
		n.link(item)
		return nil
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = item
	item.parent = n
	n.renumber(i)
	return nil
}

// ReplaceItem puts replacement at the position of old, which must be a
// child of n, and releases old. In an object a replacement without a name
// takes the name of old.
func (n *Node) ReplaceItem(old, replacement *Node) error {
	switch {
	case !n.mutable():
		return errors.Wrap(ErrInvalidArgument, "replace in a non-container or reference container")
	case old == nil || old.parent != n:
		return errors.Wrap(ErrInvalidArgument, "item to replace is not a child")
	case replacement == old:
		return nil
	}
	if err := n.checkLink(replacement); err != nil {
		return err
	}
	if n.kind == Object {
		if replacement.name == "" {
			replacement.name, replacement.nameConst = old.name, old.nameConst
		}
	} else {
		replacement.name, replacement.nameConst = "", false
	}
	i := old.index
	n.children[i] = replacement
	replacement.parent, replacement.index = n, i
	old.parent = nil
	old.release()
	return nil
}

// ReplaceIndex replaces the i-th child with replacement.
func (n *Node) ReplaceIndex(i int, replacement *Node) error {
	if i < 0 || i >= n.Len() {
		return errors.Wrapf(ErrInvalidArgument, "replace at index %d", i)
	}
	return n.ReplaceItem(n.Index(i), replacement)
}

// Replace replaces the first member matching name ignoring ASCII case.
// The replacement is renamed to name.
func (n *Node) Replace(name string, replacement *Node) error {
	return n.replaceMember(name, replacement, false)
}

// ReplaceCaseSensitive replaces the first member named exactly name. The
// replacement is renamed to name.
func (n *Node) ReplaceCaseSensitive(name string, replacement *Node) error {
	return n.replaceMember(name, replacement, true)
}

func (n *Node) replaceMember(name string, replacement *Node, caseSensitive bool) error {
	if replacement == nil || name == "" {
		return errors.Wrap(ErrInvalidArgument, "replace member with nil item or empty name")
	}
	old := n.lookup(name, caseSensitive)
	if old == nil {
		return errors.Wrapf(ErrInvalidArgument, "no member %q", name)
	}
	if err := n.checkLink(replacement); err != nil {
		return err
	}
	replacement.name, replacement.nameConst = name, false
	return n.ReplaceItem(old, replacement)
}

// Duplicate returns an unlinked copy of n, or nil for a nil or Invalid
// node. With recurse an owned container is copied with all of its
// descendants; otherwise the copy is empty. A reference stays a reference
// to the same content.
func (n *Node) Duplicate(recurse bool) *Node {
	if n.IsInvalid() {
		return nil
	}
	dup := &Node{
		kind:      n.kind,
		own:       n.own,
		num:       n.num,
		text:      n.text,
		name:      n.name,
		nameConst: n.nameConst,
		lender:    n.lender,
	}
	if recurse && n.own == owned {
		dup.children = make([]*Node, 0, len(n.children))
		for _, c := range n.children {
			dup.link(c.Duplicate(true))
		}
	}
	return dup
}
