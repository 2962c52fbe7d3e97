// Package ai provides the balance-suggestion and effect-consultation client.
//
// The client talks to an Anthropic-style messages endpoint. Two operations
// are exposed:
//
//   - [Client.SuggestBalance] asks for balanced attack/HP values for a battle
//     card and parses the structured JSON object out of the model's reply.
//   - [Client.Consult] rewrites a card's effect text in one of a few fixed
//     modes (improve, shorten, penalty) and returns the reply verbatim.
//
// Replies are cached through [cache.Cache] keyed by a hash of the request,
// so repeated analysis of an unchanged card never hits the upstream twice.
// Transient upstream failures (timeouts, 429, 5xx) are retried with backoff;
// everything that still fails surfaces as an UPSTREAM_ERROR and never
// prevents cards from being saved.
package ai
