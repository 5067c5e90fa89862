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

// Package base is for basic methods which can be used by all provider components
package base

const (
	// ProviderName is a name of the logical volume provider
	ProviderName = "lvm-provider"

	// InfoLevel is the log level for regular messages
	InfoLevel = "info"
	// DebugLevel is the log level which prints every lvm command with its output
	DebugLevel = "debug"
	// TraceLevel is the most verbose log level
	TraceLevel = "trace"

	// DefaultConfigPath is the default path of the desired state file
	DefaultConfigPath = "/etc/lvm-provider/volumes.yaml"
)

// CtxKey variable type uses for keys in context WithValue
type CtxKey string

// RequestUUID is the context key of ID of a single reconciliation
const RequestUUID CtxKey = "RequestUUID"
