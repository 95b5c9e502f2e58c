/*
Package domain contains the core types of the dynurl placeholder engine.

It defines what a path template is made of (Tokens), how callers plug values in
(Resolvers, value containers and field lookups), the per-call Resolution Context
and the Result handed back to the host. The package is free of I/O and external
dependencies, so adapters and the runtime can share it without cycles.

# Key Entities

  - Token: a `{name}` placeholder found in a template.
  - Resolver: the application strategy consulted first for every token.
  - Config: the snapshot of resolver + namespace fallback flag used for one call.
  - ResolutionContext: the element that triggered the request plus the Config.
  - Result: the rewritten path, the changed flag and a per-name report.
  - ValueContainer / Getter: values that are unwrapped before substitution.
*/
package domain
