/*
Package ports defines the driven and driving ports (interfaces) of the magazine engine.

These interfaces decouple the simulation core from external implementations, allowing
definitions to come from different sources and verdicts to be cached in different backends.

# Key Interfaces

  - DefinitionLoader: Loads automaton definitions by ID (e.g., from Loam, files or memory).
  - Watchable: Notifies about changed definitions for hot reload.
  - VerdictCache: Stores verdicts of finished evaluations.
  - Evaluator: The surface consumed by the HTTP and MCP adapters.
*/
package ports
