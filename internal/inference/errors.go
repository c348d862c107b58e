package inference

import "errors"

var (
	// ErrProviderStatus is returned when the provider answers with a non-2xx status.
	ErrProviderStatus = errors.New("inference provider returned an error status")
	// ErrProviderTransport wraps network and timeout failures of a provider call.
	ErrProviderTransport = errors.New("inference provider transport error")
	// ErrEmptyCompletion is returned when the provider answered without choices.
	ErrEmptyCompletion = errors.New("inference provider returned no completion")

	// ErrInvalidFormat is returned when the model output has no parsable JSON
	// object or a nutrient value is not a non-negative number.
	ErrInvalidFormat = errors.New("invalid nutrient data format")
	// ErrIncompleteResponse is returned when the JSON object lacks one of the
	// required nutrient keys.
	ErrIncompleteResponse = errors.New("incomplete nutrient data")
)
