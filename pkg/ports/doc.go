/*
Package ports defines the driven ports (interfaces) of the navigation controller.

These interfaces decouple the navigation protocol from the decision API transport and
the messaging platform, so the controller can run against test doubles.

# Key Interfaces

  - Fetcher: resolves a navigation key into a Response (the decision API client).
  - Sink: posts a rendered Prompt into a channel (the platform boundary).
  - PromptStore: remembers which NavigationState produced each posted prompt.
  - DistributedLocker: serializes presses on one prompt across bot replicas.
*/
package ports
