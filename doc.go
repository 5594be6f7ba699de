/*
Package jvalue is a JSON value library. It parses UTF-8 text into a tree of
Nodes, lets callers build and edit trees, prints them back to text, compares
them structurally and minifies text in place.

# Parsing

Parse reads one JSON value that must make up the whole input:

	root, err := jvalue.ParseString(`{"a":1,"b":[true,null]}`)
	if err != nil {
		var perr *jvalue.ParseError
		if errors.As(err, &perr) {
			// perr.Offset, perr.Line and perr.Column locate the failure
		}
	}
	a := root.Get("A") // member lookup ignores ASCII case

ParseWithOpts reports where parsing stopped and accepts options such as
MaxDepth, RequireTerminated, AllowBOM and StrictNumbers. Nesting deeper
than 1000 arrays or objects fails with ErrDepthExceeded by default. A
failed parse never returns a partial tree.

# Building and editing

Containers hold their children in order. A child knows its parent, so
Next, Prev and DetachItem need no search:

	obj := jvalue.NewObject()
	obj.AddNumber("a", 1)
	list := obj.AddArray("b")
	list.Append(jvalue.NewTrue())
	list.Append(jvalue.NewNull())

	b := obj.Detach("b") // b now belongs to the caller
	b.Delete()

A node can be linked into one container at a time. Linking fails with
ErrInvalidArgument when the item is already linked or would contain its
own container.

# References

A reference borrows the content of another node instead of owning it.
Deleting a reference, or the container holding it, never releases the
borrowed content, and a borrowed container cannot be changed through the
reference. Duplicate keeps references as references.

# Printing

Print renders one element or member per line indented with tabs;
PrintUnformatted renders compact text. Numbers print as the shortest text
that parses back to the same float64. PrintPreallocated writes into caller
storage and fails with ErrBufferTooSmall instead of growing it. Fprint
writes to an io.Writer and can indent with spaces or add ANSI colors.

Trees are not safe for concurrent mutation. Concurrent reads are fine.
*/
package jvalue
