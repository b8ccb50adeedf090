// meta/meta.go
package meta

// DEFAULT_DEPTH is the search horizon in plies. Nine plies solve tic-tac-toe.
const DEFAULT_DEPTH = 9

// GAMES defines the number of games per experiment match up.
const GAMES = 20

// EPSILON defines how often experiment agents play a random move.
const EPSILON = 0.1

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "experiments/results"
