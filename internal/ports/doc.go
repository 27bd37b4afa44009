// Package ports defines the interfaces (ports) that connect the decode
// engine to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the engine needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [FrameSource]: Streams parsed frame records from a candump log
//   - [TableWriter]: Serializes decoded rows to a tabular sink
//
// The application layer (internal/app) depends only on these interfaces.
// Concrete implementations live in internal/candump and internal/report.
// This separation enables testing the orchestration with in-memory fakes
// and swapping the log format or output format without touching the engine.
package ports
