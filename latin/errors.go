package latin

import "fmt"

// ErrInvalidOrder is returned when an order outside [1,64) is requested —
// 64 because a cell's candidate set is packed into the low bits of a
// uint64 word, one bit per digit.
var ErrInvalidOrder = fmt.Errorf("latin: order must be in [1,64)")

// ErrInvalidGrid is returned when a clue grid's length does not match its
// claimed order, or contains a digit outside [0,order].
var ErrInvalidGrid = fmt.Errorf("latin: grid does not match order")
