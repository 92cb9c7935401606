package frontofhouse

import "fmt"

// Rectangle is an axis aligned width x height value. The fields are
// unexported so a Rectangle can't be changed once built.
type Rectangle struct {
	width  uint32
	height uint32
}

// NewRectangle accepts any dimensions, including zero.
func NewRectangle(width, height uint32) Rectangle {
	return Rectangle{width: width, height: height}
}

func (r Rectangle) Width() uint32  { return r.width }
func (r Rectangle) Height() uint32 { return r.height }

// CanHold reports whether r is strictly wider and strictly taller than other.
// A rectangle never holds itself.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.width > other.width && r.height > other.height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d", r.width, r.height)
}
