package lexerr

import (
	"errors"
	"testing"
)

func TestIoErrorUnwrapsAndFormats(t *testing.T) {
	cause := errors.New("permission denied")
	err := &IoError{Path: "sample.py", Err: cause}

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false, want true")
	}
	if got := err.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestLexErrorFormatsLocation(t *testing.T) {
	err := &LexError{TokenizerLabel: "Python", ByteOffset: 42}
	got := err.Error()
	if got == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestConfigurationErrorFormatsReason(t *testing.T) {
	err := &ConfigurationError{Reason: "weight matrix shape mismatch"}
	if got := err.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestTrainingErrorUnwrapsWhenWrapped(t *testing.T) {
	cause := errors.New("singular matrix")
	wrapped := &TrainingError{Reason: "normal equations system is singular", Err: cause}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("errors.Is(wrapped, cause) = false, want true")
	}

	bare := &TrainingError{Reason: "missing sample directory"}
	if errors.Unwrap(bare) != nil {
		t.Fatalf("Unwrap() of a cause-less TrainingError should be nil")
	}
	if got := bare.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
}
