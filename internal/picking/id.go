// Package picking resolves screen positions to scene objects by drawing every
// object's identity into an off-screen integer buffer and reading one pixel
// back.
package picking

import (
	"fmt"
	"math"
)

// ObjectID is the value written to the pick buffer. Zero is the cleared
// background; registry index i is stored as i+1.
type ObjectID uint32

// None is the ID of pixels no object covers.
const None ObjectID = 0

// MaxIndex is the largest registry index that has an ObjectID.
const MaxIndex = math.MaxUint32 - 1

// IDForIndex encodes a registry index. It panics when index is negative or
// above MaxIndex, since the ID would wrap onto another object or None.
func IDForIndex(index int) ObjectID {
	if index < 0 || uint64(index) > MaxIndex {
		panic(fmt.Sprintf("picking: index %d has no object ID", index))
	}
	return ObjectID(index + 1)
}

// Index decodes the registry index, reporting false for None.
func (id ObjectID) Index() (int, bool) {
	if id == None {
		return 0, false
	}
	return int(id) - 1, true
}
