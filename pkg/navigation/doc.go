/*
Package navigation implements the menu navigation protocol.

The Controller turns a navigation key into exactly one fetch, renders the result and
posts it:

	Idle -> AwaitingResponse(key) -> Displayed(Menu, key) | Displayed(Answer) | Failed

A displayed menu awaits one of its actions. Each action carries its target key, so the
next step needs nothing but that key: forward navigation targets an option label, and
"Back to Main Menu" always targets the root key (there is no multi-level back stack).
Answers and failures have no outgoing transitions. Failures post a fixed notice and are
never retried.

The Dispatcher is the single point where platform events (ready, invoke, select) enter
the protocol.
*/
package navigation
