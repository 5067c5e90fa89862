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

package util

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// SignalHandler is a structure which contains methods for signal handling
type SignalHandler struct {
	log *logrus.Entry
}

// NewSignalHandler is a constructor for SignalHandler
func NewSignalHandler(logger *logrus.Logger) *SignalHandler {
	return &SignalHandler{log: logger.WithField("component", "SignalHandler")}
}

// SetupStopHandler blocks until SIGTERM or SIGINT is caught and calls stopFn
func (sh *SignalHandler) SetupStopHandler(stopFn func()) {
	sh.waitSignal(syscall.SIGTERM, syscall.SIGINT)
	if stopFn != nil {
		stopFn()
	}
}

// waitSignal blocks until one of sigs is received
func (sh *SignalHandler) waitSignal(sigs ...os.Signal) {
	signalChan := make(chan os.Signal, 1)

	signal.Notify(signalChan, sigs...)
	defer signal.Stop(signalChan)

	//Wait signal
	sig := <-signalChan

	sh.log.WithField("method", "waitSignal").Debugf("Got %v signal", sig)
}
