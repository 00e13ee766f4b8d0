package models

import "errors"

var (
	// ErrDataUnavailable means the word source could not be read and no seed was allowed.
	ErrDataUnavailable = errors.New("word data unavailable")

	// ErrNoWords means the word bank holds no playable word at all.
	ErrNoWords = errors.New("no words available in any category")

	// ErrEmptyCategory means the selected category exists but has no words.
	ErrEmptyCategory = errors.New("category has no words")

	// ErrUnknownCategory means the selected category is not in the word bank.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownDifficulty means the difficulty name could not be parsed.
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// ErrDuplicateNickname means the nickname is already in the score store.
	ErrDuplicateNickname = errors.New("nickname already registered")

	// ErrInvalidNickname means the nickname is blank or holds a comma or control character.
	ErrInvalidNickname = errors.New("invalid nickname")

	// ErrInvalidScore means a score record carries negative stats.
	ErrInvalidScore = errors.New("invalid score record")

	// ErrPlayerNotFound means no record exists for the nickname.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrInvalidGuess covers empty input, more than one character, non-letters and repeats.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrSessionFinished means a guess was made after the round was won, lost or abandoned.
	ErrSessionFinished = errors.New("game session already finished")

	// ErrSessionInProgress means a result was requested before the round ended.
	ErrSessionInProgress = errors.New("game session still in progress")

	// ErrResultRecorded means the round's result was already written to the score store.
	ErrResultRecorded = errors.New("game result already recorded")

	// ErrInputUnavailable means the input stream was closed while waiting for the player.
	ErrInputUnavailable = errors.New("input unavailable")
)
