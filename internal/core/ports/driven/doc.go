// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CorpusProvider: Supplies the ordered document corpus once per session
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - KVStore: Durable key-value storage. Without it, recent searches live
//     in memory for the current session only.
//   - Navigator: Receives navigation intents. Without it, confirming a
//     result only records the query and closes the search surface.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
