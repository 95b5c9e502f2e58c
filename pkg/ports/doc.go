/*
Package ports defines the driven ports (interfaces) of the dynurl engine.

These interfaces decouple the placeholder engine from the places values live,
so the fallback strategy can read from memory, a file or Redis without the engine
knowing which.

# Key Interfaces

  - Namespace: read-only lookup of a root name, used by the fallback strategy.
  - MutableNamespace: a Namespace that can also be written (memory, Redis).
  - Watchable: providers that can signal when their backing data changed.
  - Rewriter: what host adapters need from an engine.
*/
package ports
