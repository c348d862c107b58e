package imaging

import "errors"

var (
	// ErrDecode is returned when the input bytes are empty or are not an
	// image in a registered format.
	ErrDecode = errors.New("image decode error")
	// ErrEncode is returned when the JPEG encoder fails.
	ErrEncode = errors.New("image encode error")
	// ErrInvalidDataURI is returned for strings that are not base64 data URIs.
	ErrInvalidDataURI = errors.New("invalid data URI")
)
