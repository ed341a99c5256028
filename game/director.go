package game

// Director plays a game without user input.
type Director interface {
	/**
	 * Initialize the director with the session it will play
	 */
	Init(*Session)

	/**
	 * Perform a single move
	 */
	Act() (MoveResult, error)
}
