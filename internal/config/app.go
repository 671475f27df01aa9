package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

const DefaultDifficulty = "medium"

// Difficulty reads MINES_DIFFICULTY: a preset name or index, or W:H:M.
func Difficulty() (mines.Setup, error) {
	difficulty, ok := os.LookupEnv("MINES_DIFFICULTY")
	if !ok || difficulty == "" {
		difficulty = DefaultDifficulty
	}
	return ParseDifficulty(difficulty)
}

func ParseDifficulty(difficulty string) (mines.Setup, error) {
	setup, err := mines.ParseSetup(difficulty)
	if err != nil {
		return mines.Setup{}, fmt.Errorf("unable to parse difficulty: %w", err)
	}
	if err := setup.Validate(); err != nil {
		return mines.Setup{}, err
	}
	return setup, nil
}

// Seed reads MINES_SEED. ok is false when no seed is configured and the game
// should be seeded from runtime entropy.
func Seed() (seed [2]uint64, ok bool, err error) {
	seedStr, ok := os.LookupEnv("MINES_SEED")
	if !ok || seedStr == "" {
		return seed, false, nil
	}
	seed, err = ParseSeed(seedStr)
	return seed, err == nil, err
}

// ParseSeed accepts the two PCG seeds as "a:b".
func ParseSeed(seedStr string) (seed [2]uint64, err error) {
	a, b, found := strings.Cut(seedStr, ":")
	if !found {
		return seed, fmt.Errorf(`invalid seed "%s": expected two numbers separated by ':'`, seedStr)
	}
	if seed[0], err = strconv.ParseUint(a, 10, 64); err != nil {
		return seed, fmt.Errorf("unable to parse first seed: %w", err)
	}
	if seed[1], err = strconv.ParseUint(b, 10, 64); err != nil {
		return seed, fmt.Errorf("unable to parse second seed: %w", err)
	}
	return seed, nil
}
