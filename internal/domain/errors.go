package domain

import "errors"

// Hero validation errors
var (
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidTier      = errors.New("invalid tier")
	ErrHeroNameRequired = errors.New("hero name is required")
	ErrHeroNotFound     = errors.New("hero not found")
)

// Combo validation errors
var (
	ErrComboNameRequired  = errors.New("combo name is required")
	ErrComboTooFewHeroes  = errors.New("combo requires at least 2 heroes")
	ErrComboTooManyHeroes = errors.New("combo allows at most 3 heroes")
	ErrComboDuplicateHero = errors.New("combo contains duplicate heroes")
	ErrComboUnknownHero   = errors.New("combo references an unknown hero")
)

// Draft errors
var (
	ErrDraftNotActive   = errors.New("no draft in progress")
	ErrDraftActive      = errors.New("a draft is already in progress")
	ErrDraftComplete    = errors.New("draft already complete")
	ErrDraftNotComplete = errors.New("draft is not complete")
	ErrNotYourTurn      = errors.New("not the analyst's turn")
	ErrHeroUnavailable  = errors.New("hero already banned, picked, or used this series")
	ErrInvalidFormat    = errors.New("invalid series format")
)
