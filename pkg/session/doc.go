/*
Package session serializes work on a single rendered prompt.

Two presses on the same prompt may arrive before the first fetch completes. The Manager
runs them one after the other (each still issuing its own fetch), using a reference
counted in-process mutex per prompt and, optionally, a distributed lock so several bot
replicas sharing one channel do not interleave their posts.
*/
package session
