/*
Copyright © 2020 Dell Inc. or its subsidiaries. All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package error

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrorEmptyParameter indicates that mandatory field is empty
	ErrorEmptyParameter = errors.New("empty parameter")
	// ErrorFailedParsing indicates that tool output couldn't be interpreted
	ErrorFailedParsing = errors.New("failed to parse")
)

// ExecutionError means that system util couldn't be started, exited with non-zero code
// or printed output which couldn't be interpreted. Such errors are not retried
type ExecutionError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("command %q failed: %v", e.Cmd, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ", stderr: " + stderr
	}
	return msg
}

// Unwrap returns the cause of ExecutionError
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// PolicyError means that requested change is not allowed for the current state of the volume.
// The outcome is deterministic, so operator has to change the request
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return e.Reason
}

// NewPolicyError builds PolicyError with formatted reason
func NewPolicyError(format string, args ...interface{}) error {
	return &PolicyError{Reason: fmt.Sprintf(format, args...)}
}

// IsPolicyError checks whether err or any error it wraps is a PolicyError
func IsPolicyError(err error) bool {
	var pErr *PolicyError
	return errors.As(err, &pErr)
}

// IsExecutionError checks whether err or any error it wraps is an ExecutionError
func IsExecutionError(err error) bool {
	var eErr *ExecutionError
	return errors.As(err, &eErr)
}
