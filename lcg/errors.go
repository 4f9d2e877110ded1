// Copyright 2025 The Oxia Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lcg

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a rejected set of parameters.
type ErrorKind int

const (
	NonIntegerInput ErrorKind = iota
	IntegerOutOfRange
	InvalidModulus
	InvalidSeed
	InvalidCount
)

var (
	ErrNonIntegerInput   = errors.New("all parameters must be integers")
	ErrIntegerOutOfRange = errors.New("parameter does not fit in a 64-bit integer")
	ErrInvalidModulus    = errors.New("modulus m must be greater than 1")
	ErrInvalidSeed       = errors.New("seed must be at least 0 and less than m")
	ErrInvalidCount      = errors.New("count n must be greater than 0")
)

var kindErrors = map[ErrorKind]error{
	NonIntegerInput:   ErrNonIntegerInput,
	IntegerOutOfRange: ErrIntegerOutOfRange,
	InvalidModulus:    ErrInvalidModulus,
	InvalidSeed:       ErrInvalidSeed,
	InvalidCount:      ErrInvalidCount,
}

func (k ErrorKind) String() string {
	switch k {
	case NonIntegerInput:
		return "NonIntegerInput"
	case IntegerOutOfRange:
		return "IntegerOutOfRange"
	case InvalidModulus:
		return "InvalidModulus"
	case InvalidSeed:
		return "InvalidSeed"
	case InvalidCount:
		return "InvalidCount"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ValidationError reports the first parameter that failed validation.
// It matches the sentinel of its kind with errors.Is.
type ValidationError struct {
	Kind  ErrorKind
	Param string
	Value string
}

func newValidationError(kind ErrorKind, param, value string) *ValidationError {
	return &ValidationError{Kind: kind, Param: param, Value: value}
}

func (e *ValidationError) Error() string {
	if e.Param == "" {
		return e.Unwrap().Error()
	}
	return fmt.Sprintf("%s: %s=%q", e.Unwrap().Error(), e.Param, e.Value)
}

func (e *ValidationError) Unwrap() error {
	if err, ok := kindErrors[e.Kind]; ok {
		return err
	}
	return fmt.Errorf("invalid parameters (%s)", e.Kind)
}
