/*
Package discord connects the navigation protocol to Discord through discordgo.

It is the platform boundary: it turns gateway events into domain events for the
navigation dispatcher, and posts rendered prompts as channel messages.

# Mapping

  - Prompt card: a blue embed (title = question, description = numbered options) plus
    one primary button per option and a danger "Back to Main Menu" button off-root.
  - Terminal message: plain message content, no components.
  - Button custom IDs carry the navigation key ("opt:<label>", "back:menu"), so a press
    needs no server-side state to be resolved.
*/
package discord
