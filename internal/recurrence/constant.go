package recurrence

import "fmt"

// Constant identifies which affine transform was applied to reach the next
// chain value. The zero value is not a valid constant.
type Constant int

const (
	// MinusOne is applied for residue 1: (6n - 1) / 5.
	MinusOne Constant = iota + 1
	// PlusThree is applied for residue 2: (6n + 3) / 5.
	PlusThree
	// MinusThree is applied for residue 3: (6n - 3) / 5.
	MinusThree
	// PlusOne is applied for residue 4: (6n + 1) / 5.
	PlusOne
)

// offsets is indexed by Constant.
var offsets = [...]int64{
	MinusOne:   -1,
	PlusThree:  3,
	MinusThree: -3,
	PlusOne:    1,
}

// ConstantFor returns the constant used for a residue in 1..4.
// Residue 0 (and anything outside 0..4) has no constant.
func ConstantFor(residue int64) (Constant, bool) {
	if residue < 1 || residue > 4 {
		return 0, false
	}
	return Constant(residue), true
}

// Valid reports whether c is one of the four defined constants.
func (c Constant) Valid() bool {
	return c >= MinusOne && c <= PlusOne
}

// Offset returns the signed k added to 6n before dividing by 5.
func (c Constant) Offset() int64 {
	if !c.Valid() {
		panic(fmt.Sprintf("recurrence: invalid constant %d", int(c)))
	}
	return offsets[c]
}

// String returns the label used in reports: "-1", "+3", "-3" or "+1".
func (c Constant) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Constant(%d)", int(c))
	}
	return fmt.Sprintf("%+d", offsets[c])
}

// MarshalText renders the label, so constants serialize as "+3" rather than 2.
func (c Constant) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid constant %d", int(c))
	}
	return []byte(c.String()), nil
}
