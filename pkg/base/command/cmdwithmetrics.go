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

package command

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dell/lvm-provider/pkg/metrics/common"
)

// Options is a functional option for RunCmd
type Options func(*runOptions)

type runOptions struct {
	useMetrics bool
	cmdName    string
}

// UseMetrics enables observation of SystemCMDDuration for the command
func UseMetrics(use bool) Options {
	return func(o *runOptions) {
		o.useMetrics = use
	}
}

// CmdName sets name label of SystemCMDDuration, command itself is used by default
// Use it to get rid of arguments like LV names in metric labels
func CmdName(name string) Options {
	return func(o *runOptions) {
		o.cmdName = name
	}
}

func newRunOptions(cmd interface{}, opts ...Options) *runOptions {
	o := &runOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.cmdName == "" {
		o.cmdName = fmt.Sprintf("%v", cmd)
	}
	return o
}

// evaluateDuration starts SystemCMDDuration timer, returned func stops it
func (o *runOptions) evaluateDuration() func() {
	return common.SystemCMDDuration.EvaluateDuration(prometheus.Labels{"name": o.cmdName})
}
