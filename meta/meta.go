// meta/meta.go
package meta

import "time"

// PLACEMENT_TIMEOUT bounds a single place_penguin call into an agent.
const PLACEMENT_TIMEOUT = 10 * time.Second

// TURN_TIMEOUT bounds a single take_turn call into an agent.
const TURN_TIMEOUT = 10 * time.Second

// COLOR_TIMEOUT bounds a single assign_color call into an agent.
const COLOR_TIMEOUT = 10 * time.Second

// DISQUALIFY_TIMEOUT bounds the inform_disqualified notification.
const DISQUALIFY_TIMEOUT = 10 * time.Second

// OBSERVER_TIMEOUT bounds the delivery of one event to one observer.
const OBSERVER_TIMEOUT = 10 * time.Second

// MIN_PLAYERS and MAX_PLAYERS bound the number of agents per match.
const MIN_PLAYERS = 2
const MAX_PLAYERS = 4

// PENGUIN_BASE determines the placement quota: each player places
// PENGUIN_BASE - numPlayers penguins.
const PENGUIN_BASE = 6
