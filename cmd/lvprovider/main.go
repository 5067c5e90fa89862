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

// Package for main function of logical volume provider
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/dell/lvm-provider/pkg/base"
	"github.com/dell/lvm-provider/pkg/base/command"
	"github.com/dell/lvm-provider/pkg/base/linuxutils/lvm"
	"github.com/dell/lvm-provider/pkg/base/util"
	"github.com/dell/lvm-provider/pkg/lvresource"
)

var (
	configPath     = flag.String("config", base.DefaultConfigPath, "path to desired state of logical volumes")
	watch          = flag.Bool("watch", false, "keep running and apply config again on every change")
	metricsAddress = flag.String("metricsaddress", "", "address for prometheus metrics, disabled when empty")
	lvmPath        = flag.String("lvm", lvm.DefaultLVMPath, "path to lvm binary")
	logPath        = flag.String("logpath", "", "log path for logical volume provider")
	logLevel       = flag.String("loglevel", base.InfoLevel,
		fmt.Sprintf("Log level, support values are %s, %s, %s", base.InfoLevel, base.DebugLevel, base.TraceLevel))
)

func main() {
	flag.Parse()

	logger, err := base.InitLogger(*logPath, *logLevel)
	if err != nil {
		logger.Warnf("Can't initialize logger properly: %v", err)
	}
	logger.Infof("Start %s, config %s", base.ProviderName, *configPath)

	e := command.NewExecutor(logger)
	lvmWrap := lvm.NewLVMWithCommands(e, lvm.CommandsFor(*lvmPath), logger)
	reconciler := lvresource.NewReconciler(lvresource.NewProvider(lvmWrap, logger), logger)

	if *metricsAddress != "" {
		go serveMetrics(*metricsAddress, logger)
	}

	if !*watch {
		if err := reconciler.ApplyFile(context.Background(), *configPath); err != nil {
			logger.Errorf("Desired state wasn't applied: %v", err)
			os.Exit(1)
		}
		logger.Info("Desired state is applied")
		return
	}

	// creates a new file watcher for config
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Fatalf("Failed to create fs watcher: %v", err)
	}
	//nolint:errcheck
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go util.NewSignalHandler(logger).SetupStopHandler(cancel)

	if err := reconciler.UpdateOnConfigChange(ctx, watcher, *configPath); err != nil {
		logger.Errorf("Stop watching config: %v", err)
		cancel()
		//nolint:gocritic
		os.Exit(1)
	}
	cancel()
	logger.Info("Got stop signal")
}

func serveMetrics(addr string, logger *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Infof("Serving metrics on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Errorf("Metrics server on %s failed: %v", addr, err)
	}
}
