package entities

import (
	"github.com/volatiletech/null/v8"
)

// OptionalInt is a patch field that tells an absent key apart from an
// explicit null. Set is false when the key was not sent.
type OptionalInt struct {
	Set   bool
	Value null.Int
}

// UnmarshalJSON is only called when the key is present.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Value.UnmarshalJSON(data)
}

// SetInt returns a present, non-null OptionalInt.
func SetInt(v int) OptionalInt {
	return OptionalInt{Set: true, Value: null.IntFrom(v)}
}

// ClearInt returns a present, null OptionalInt.
func ClearInt() OptionalInt {
	return OptionalInt{Set: true}
}

func setOptionalInt(dst **int, o OptionalInt) {
	if !o.Set {
		return
	}
	*dst = o.Value.Ptr()
}
