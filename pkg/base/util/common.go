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

// Package util contains helpers shared by provider packages
package util

import "strings"

// ContainsString return true if slice contains string str
// Receives slice of strings and string to find
// Returns true if contains or false if not
func ContainsString(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}

// SplitAndTrimSpace splits str by sep and trims spaces of every item, empty items are dropped
// Receives string to split and separator
// Returns slice of non-empty trimmed items
func SplitAndTrimSpace(str, sep string) []string {
	result := make([]string, 0)
	for _, item := range strings.Split(str, sep) {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
