/*
Copyright 2017 The Kubernetes Authors.

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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"

	"github.com/raids-lab/agencyos/cmd/agencyos/helper"
)

// @title						AgencyOS API
// @version						1.0.0
// @description					Task and project views for agency workspaces: list, board, calendar and gantt.
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description					Paste 'Bearer ${TOKEN}' with a token issued by the auth provider to call protected routes
func main() {
	// Initialize configuration
	configInit := helper.NewConfigInitializer()
	backendConfig := configInit.GetBackendConfig()

	// Load debug environment if needed
	if err := configInit.LoadDebugEnvironment(); err != nil {
		klog.Fatalf("Failed to load env: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize register config and dependencies
	registerConfig, err := configInit.InitializeRegisterConfig(ctx)
	if err != nil {
		klog.Fatalf("Failed to register config: %s\n", err)
	}

	// Start scheduled reminders
	configInit.StartCronJobs(ctx, registerConfig)
	defer registerConfig.CronJobManager.StopCron()

	serverRunner := helper.NewServerRunner(backendConfig)
	serverRunner.StartMetricsServer(ctx, registerConfig)
	serverRunner.StartServer(ctx, registerConfig)
}
