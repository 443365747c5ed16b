/*
Package api is the decision API client.

Every navigation step is a single POST carrying the navigation key:

	{"choice": "menu"}

and the API answers with either a menu or a terminal answer:

	{"question": "Pick a topic", "options": ["Billing", "Support"]}
	{"answer": "Support is open 9-5."}

Anything else, including a non-2xx status, is reported as an error so the caller can post
a failure notice. The client never retries and adds no timeout of its own; configure one on
the *http.Client passed through WithHTTPClient.
*/
package api
