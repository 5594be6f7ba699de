package jvalue

import (
	"iter"
	"math"

	"github.com/pkg/errors"
)

// Kind is the type of JSON value a Node holds.
type Kind uint8

const (
	// Invalid is the kind of the zero Node and of a deleted Node.
	Invalid Kind = iota
	False
	True
	Null
	Number
	String
	Array
	Object
	// Raw holds JSON text that is printed verbatim.
	Raw
)

var kindNames = [...]string{
	Invalid: "invalid",
	False:   "false",
	True:    "true",
	Null:    "null",
	Number:  "number",
	String:  "string",
	Array:   "array",
	Object:  "object",
	Raw:     "raw",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

type ownership uint8

const (
	owned ownership = iota
	// borrowed content belongs to another node and is never released
	// through this one.
	borrowed
)

// A Node is one JSON value. Arrays and objects hold their children in
// order; every linked child knows its parent and its position.
//
// Nodes are not safe for concurrent mutation.
type Node struct {
	kind Kind
	own  ownership
	num  float64
	text string

	name      string
	nameConst bool

	children []*Node
	lender   *Node // for a borrowed container, the node owning the children

	parent *Node
	index  int
}

// NewNull returns a null node.
func NewNull() *Node { return &Node{kind: Null} }

// NewTrue returns a true node.
func NewTrue() *Node { return &Node{kind: True} }

// NewFalse returns a false node.
func NewFalse() *Node { return &Node{kind: False} }

// NewBool returns a true or false node.
func NewBool(b bool) *Node {
	if b {
		return NewTrue()
	}
	return NewFalse()
}

// NewNumber returns a number node.
func NewNumber(f float64) *Node { return &Node{kind: Number, num: f} }

// NewString returns a string node.
func NewString(s string) *Node { return &Node{kind: String, text: s} }

// NewRaw returns a node whose text is printed verbatim. The caller is
// responsible for s being valid JSON.
func NewRaw(s string) *Node { return &Node{kind: Raw, text: s} }

// NewArray returns an empty array.
func NewArray() *Node { return &Node{kind: Array} }

// NewObject returns an empty object.
func NewObject() *Node { return &Node{kind: Object} }

// NewStringReference returns a string node flagged as a reference.
func NewStringReference(s string) *Node {
	return &Node{kind: String, own: borrowed, text: s}
}

// NewArrayReference returns an array that borrows the elements of arr.
// Deleting the reference never releases them. It returns nil if arr is
// not an array.
func NewArrayReference(arr *Node) *Node {
	if !arr.IsArray() {
		return nil
	}
	return newReference(arr)
}

// NewObjectReference returns an object that borrows the members of obj.
// Deleting the reference never releases them. It returns nil if obj is not
// an object.
func NewObjectReference(obj *Node) *Node {
	if !obj.IsObject() {
		return nil
	}
	return newReference(obj)
}

// newReference returns an unnamed, unlinked node borrowing the content of n.
func newReference(n *Node) *Node {
	ref := &Node{kind: n.kind, own: borrowed, num: n.num, text: n.text}
	if n.kind == Array || n.kind == Object {
		ref.lender = n
		if n.lender != nil {
			ref.lender = n.lender
		}
	}
	return ref
}

// NewIntArray returns an array of numbers.
func NewIntArray(values []int) *Node {
	arr := NewArray()
	for _, v := range values {
		arr.link(NewNumber(float64(v)))
	}
	return arr
}

// NewFloatArray returns an array of numbers.
func NewFloatArray(values []float32) *Node {
	arr := NewArray()
	for _, v := range values {
		arr.link(NewNumber(float64(v)))
	}
	return arr
}

// NewDoubleArray returns an array of numbers.
func NewDoubleArray(values []float64) *Node {
	arr := NewArray()
	for _, v := range values {
		arr.link(NewNumber(v))
	}
	return arr
}

// NewStringArray returns an array of strings.
func NewStringArray(values []string) *Node {
	arr := NewArray()
	for _, v := range values {
		arr.link(NewString(v))
	}
	return arr
}

// Kind returns the kind of n. A nil node is Invalid.
func (n *Node) Kind() Kind {
	if n == nil {
		return Invalid
	}
	return n.kind
}

// IsInvalid reports whether n is nil, zero or deleted.
func (n *Node) IsInvalid() bool { return n.Kind() == Invalid }

// IsFalse reports whether n is false.
func (n *Node) IsFalse() bool { return n.Kind() == False }

// IsTrue reports whether n is true.
func (n *Node) IsTrue() bool { return n.Kind() == True }

// IsBool reports whether n is true or false.
func (n *Node) IsBool() bool { return n.Kind() == True || n.Kind() == False }

// IsNull reports whether n is null.
func (n *Node) IsNull() bool { return n.Kind() == Null }

// IsNumber reports whether n is a number.
func (n *Node) IsNumber() bool { return n.Kind() == Number }

// IsString reports whether n is a string.
func (n *Node) IsString() bool { return n.Kind() == String }

// IsArray reports whether n is an array.
func (n *Node) IsArray() bool { return n.Kind() == Array }

// IsObject reports whether n is an object.
func (n *Node) IsObject() bool { return n.Kind() == Object }

// IsRaw reports whether n holds raw JSON text.
func (n *Node) IsRaw() bool { return n.Kind() == Raw }

// IsReference reports whether n borrows its content from elsewhere.
func (n *Node) IsReference() bool { return n != nil && n.own == borrowed }

// NameIsConst reports whether n's member name was attached with AddConst
// or AddReference.
func (n *Node) NameIsConst() bool { return n != nil && n.nameConst }

func (n *Node) isContainer() bool {
	return n != nil && (n.kind == Array || n.kind == Object)
}

// items returns the children of a container, following a borrowed
// container to its lender.
func (n *Node) items() []*Node {
	if n == nil {
		return nil
	}
	if n.own == borrowed && n.lender != nil {
		return n.lender.children
	}
	return n.children
}

// Len returns the number of children of an array or object.
func (n *Node) Len() int { return len(n.items()) }

// Index returns the i-th child of an array or object, or nil.
func (n *Node) Index(i int) *Node {
	items := n.items()
	if i < 0 || i >= len(items) {
		return nil
	}
	return items[i]
}

// Get returns the first member of an object whose name matches name
// ignoring ASCII case, or nil.
func (n *Node) Get(name string) *Node { return n.lookup(name, false) }

// GetCaseSensitive returns the first member of an object named exactly
// name, or nil.
func (n *Node) GetCaseSensitive(name string) *Node { return n.lookup(name, true) }

// Has reports whether an object has a member matching name ignoring ASCII
// case.
func (n *Node) Has(name string) bool { return n.Get(name) != nil }

func (n *Node) lookup(name string, caseSensitive bool) *Node {
	if !n.IsObject() {
		return nil
	}
	for _, c := range n.items() {
		if namesEqual(c.name, name, caseSensitive) {
			return c
		}
	}
	return nil
}

func namesEqual(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Children iterates over the children of an array or object in order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.items() {
			if !yield(c) {
				return
			}
		}
	}
}

// Name returns the member name of n within its object.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// Parent returns the container n is linked into, or nil.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Child returns the first child of an array or object, or nil.
func (n *Node) Child() *Node { return n.Index(0) }

// Next returns the following sibling, or nil for the last child.
func (n *Node) Next() *Node {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent.Index(n.index + 1)
}

// Prev returns the preceding sibling, or nil for the first child.
func (n *Node) Prev() *Node {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent.Index(n.index - 1)
}

// StringValue returns the text of a string node, or "".
func (n *Node) StringValue() string {
	if !n.IsString() {
		return ""
	}
	return n.text
}

// RawValue returns the text of a raw node, or "".
func (n *Node) RawValue() string {
	if !n.IsRaw() {
		return ""
	}
	return n.text
}

// NumberValue returns the value of a number node, or NaN.
func (n *Node) NumberValue() float64 {
	if !n.IsNumber() {
		return math.NaN()
	}
	return n.num
}

// Int returns the value of a number node truncated toward zero and
// saturated to the int range. NaN and non-numbers yield 0.
func (n *Node) Int() int {
	f := n.NumberValue()
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// SetNumber changes the value of a number node.
func (n *Node) SetNumber(f float64) error {
	if !n.IsNumber() {
		return errors.Wrapf(ErrInvalidArgument, "set number on %s", n.Kind())
	}
	n.num = f
	return nil
}

// SetString changes the text of a string node. A reference string cannot
// be changed.
func (n *Node) SetString(s string) error {
	if !n.IsString() {
		return errors.Wrapf(ErrInvalidArgument, "set string on %s", n.Kind())
	}
	if n.own == borrowed {
		return errors.Wrap(ErrInvalidArgument, "set string on a reference")
	}
	n.text = s
	return nil
}

// Delete releases n. It is first detached from its parent. An owned
// container releases every descendant; borrowed content is left intact.
// A released node has kind Invalid.
func (n *Node) Delete() {
	if n == nil {
		return
	}
	if n.parent != nil {
		n.parent.unlink(n.index)
	}
	n.release()
}

func (n *Node) release() {
	if n.own == owned {
		for _, c := range n.children {
			c.parent = nil
			c.release()
		}
	}
	*n = Node{}
}

// link appends c to the children of n.
func (n *Node) link(c *Node) {
	c.parent = n
	c.index = len(n.children)
	n.children = append(n.children, c)
}

// unlink removes and returns the i-th child of n.
func (n *Node) unlink(i int) *Node {
	c := n.children[i]
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	n.renumber(i)
	c.parent = nil
	c.index = 0
	return c
}

// renumber refreshes the positions of the children of n from i on.
func (n *Node) renumber(i int) {
	for ; i < len(n.children); i++ {
		n.children[i].index = i
	}
}
