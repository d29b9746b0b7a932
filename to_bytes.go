package bloom

import "unsafe"

// toBytes returns the bytes of data without copying. The result must not be
// written to.
func toBytes(data string) []byte {
	return unsafe.Slice(unsafe.StringData(data), len(data))
}
