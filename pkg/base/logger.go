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

package base

import (
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"

	"github.com/dell/lvm-provider/pkg/base/logger"
)

// InitLogger attempts to init logrus logger with output path passed in the parameter
// If path is incorrect or "" then init logger with stdout
// Receives logPath which is the file to write logs and logLevel which is level of logging (For example debug, info)
// Returns created logrus.Logger or error if something went wrong
func InitLogger(logPath string, logLevel string) (*logrus.Logger, error) {
	log := logrus.New()
	var formatter logrus.Formatter
	if os.Getenv("LOG_FORMAT") == "text" {
		formatter = &nested.Formatter{
			HideKeys:    true,
			NoColors:    true,
			FieldsOrder: []string{"component", "method", "requestID", "volume"},
		}
	} else {
		formatter = &logrus.JSONFormatter{}
	}
	// errors are decorated with function name and line number
	log.SetFormatter(&logger.RuntimeFormatter{ChildFormatter: formatter, MaxLevel: logrus.ErrorLevel})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if logPath != "" {
		file, fErr := os.Create(logPath)
		if fErr != nil {
			log.SetOutput(os.Stdout)
			return log, fErr
		}
		log.SetOutput(file)
		return log, err
	}
	log.SetOutput(os.Stdout)
	return log, err
}
