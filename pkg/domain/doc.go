/*
Package domain contains the core models of the FAQ menu bot.

It defines the navigation protocol's vocabulary: the nodes the decision API can return,
the rendered prompt the host posts into a channel, and the navigation state that produced
it. This package is kept pure and free of I/O, so the navigation controller can be tested
without a live platform connection.

# Key Entities

  - MenuNode / AnswerNode: the two node kinds served by the decision API.
  - Response: a tagged union of Menu, Answer or Error.
  - Prompt: what the host should render (a card with actions, or a plain message).
  - NavigationState: the key that produced the displayed prompt, plus its phase.
  - Event: a platform event routed through the single dispatch point.
*/
package domain
