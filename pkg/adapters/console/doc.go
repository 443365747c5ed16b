// Package console is a terminal adapter for previewing the FAQ tree without Discord.
//
// Sink prints prompts the way the bot would post them, and Preview reads numbered
// choices from an input stream and feeds them to the navigation dispatcher.
package console
