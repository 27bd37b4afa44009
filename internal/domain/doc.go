// Package domain contains the core domain entities and value objects for
// candecode.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (file system, logging, CLI) and
// contains only pure data and invariants.
//
// # Entities
//
//   - [FrameRecord]: One logged bus event (timestamp, identifier, payload)
//   - [MessageDef] / [SignalDef] / [Schema]: The immutable signal catalog
//   - [DecodedRow]: Physical values extracted from one frame
//   - [LengthAdjustment] / [DecodeError]: Per-frame recovery records
//   - [Statistics]: Snapshot of per-identifier counters
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
