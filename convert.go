package jvalue

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// FromGo builds a tree from a Go value, encoded the way encoding/json
// would encode it.
func FromGo(v any) (*Node, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "jvalue: encode Go value")
	}
	return Parse(data)
}

// Decode stores the value of n in the Go value pointed to by v, following
// the rules of encoding/json.
func (n *Node) Decode(v any) error {
	data, err := PrintUnformatted(n)
	if err != nil {
		return err
	}
	return errors.Wrap(json.Unmarshal(data, v), "jvalue: decode into Go value")
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	return PrintUnformatted(n)
}

// UnmarshalJSON implements json.Unmarshaler. It replaces the content of n
// with the parsed value. A linked n keeps its parent, position and name.
func (n *Node) UnmarshalJSON(data []byte) error {
	if n == nil {
		return errors.Wrap(ErrInvalidArgument, "unmarshal into nil node")
	}
	if n.own == borrowed {
		return errors.Wrap(ErrInvalidArgument, "unmarshal into a reference")
	}
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	n.adopt(parsed)
	return nil
}

// adopt moves the content of src into n, releasing what n owned before.
func (n *Node) adopt(src *Node) {
	for _, c := range n.children {
		c.parent = nil
		c.release()
	}
	n.kind, n.own, n.num, n.text, n.lender = src.kind, src.own, src.num, src.text, src.lender
	n.children = src.children
	for _, c := range n.children {
		c.parent = n
	}
	*src = Node{}
}
