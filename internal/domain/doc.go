// Package domain defines the core entities of the spaced repetition
// system: decks, cards, review logs, and user preferences, together
// with their validation rules.
package domain
