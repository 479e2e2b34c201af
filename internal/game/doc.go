// Package game implements the core Rock-Paper-Scissors match logic.
//
// The main type is State, which owns the scoreboard and the round history of a
// single "first to N" match between two player slots.
//
// # Basic Usage
//
//	s, err := game.NewState(3)
//	if err != nil {
//	    return err
//	}
//	round, err := s.PlayRound(game.Rock, game.Scissors)
//	// round.Result() == game.PlayerOneWins
//	if winner, ok := s.Winner(); ok {
//	    fmt.Println("winner:", winner)
//	}
//
// # Deterministic Testing
//
// Random choices are drawn from an injected RandSource rather than a package
// global, so a seeded generator reproduces the same sequence:
//
//	rng := randutil.New(42)
//	c := game.RandomChoice(rng)
//
// # Architecture
//
// State delegates to small value types:
//   - Choice: the three hand shapes and the beats-relation between them
//   - Round: an immutable record of one exchange and its frozen result
//   - Scoreboard: two counters mutated only by applying a RoundResult
//
// State is not safe for concurrent use. A match is owned by one driver.
package game
