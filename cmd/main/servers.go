package main

import (
	"stock-backend/src/grpc_control"
	"stock-backend/src/logger"
	"stock-backend/src/scheduler"
	"stock-backend/src/server"
)

// -----------------------------------------------------------------------------

// startServers runs the HTTP API, the gRPC control server and the scheduler.
func startServers(
	api *server.APIServer,
	control *grpc_control.ControlServer,
	sched *scheduler.Scheduler,
	appLogger *logger.Logger,
) {
	go func() {
		if err := api.Start(); err != nil {
			appLogger.Critical("HTTP server failed: %v", err)
		}
	}()

	go func() {
		if err := control.Start(); err != nil {
			appLogger.Critical("gRPC control server failed: %v", err)
		}
	}()

	sched.Start()
}
