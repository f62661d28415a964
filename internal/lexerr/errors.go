// Package lexerr defines the error kinds that cross the boundary of the
// scanning and classification engine.
package lexerr

import "fmt"

// IoError wraps a failure to open or read an input path. Reported per file;
// never aborts a batch classification.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("lexsleuth: cannot read %q: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// LexError records that a tokenizer failed to match at some byte offset.
// It is never returned to a classify caller; tokenizers resynchronize by
// skipping one character and folding the event into their error counter
// instead. The type exists so internal code and tests can assert on it.
type LexError struct {
	TokenizerLabel string
	ByteOffset     int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexsleuth: %s tokenizer desynced at byte %d", e.TokenizerLabel, e.ByteOffset)
}

// ConfigurationError is fatal at Model Facade construction: the weight
// matrix shape does not match the live tokenizer set's feature width, or
// the label count does not match the matrix's column count.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("lexsleuth: invalid model configuration: %s", e.Reason)
}

// TrainingError is fatal to a training run: a sample directory is missing,
// the label count doesn't match the directory count, or the normal
// equations system is singular. It never arises at classification time.
type TrainingError struct {
	Reason string
	Err    error
}

func (e *TrainingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lexsleuth: training failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("lexsleuth: training failed: %s", e.Reason)
}

func (e *TrainingError) Unwrap() error { return e.Err }
