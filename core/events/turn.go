package events

const (
	// KindTurnCompleted identifies the end of the assistant utterance.
	KindTurnCompleted Kind = "turn.completed"
	// KindTurnInterrupted identifies an utterance cut short by new user input.
	KindTurnInterrupted Kind = "turn.interrupted"
)

// TurnCompleted marks the end of the assistant's current utterance.
type TurnCompleted struct{ Base }

// NewTurnCompleted creates a turn completed event.
func NewTurnCompleted() TurnCompleted {
	return TurnCompleted{Base: NewBase(KindTurnCompleted)}
}

// TurnInterrupted marks that the assistant's utterance was cut short.
// It is a marker for the display layer, not a rollback: text already
// emitted stays.
type TurnInterrupted struct{ Base }

// NewTurnInterrupted creates a turn interrupted event.
func NewTurnInterrupted() TurnInterrupted {
	return TurnInterrupted{Base: NewBase(KindTurnInterrupted)}
}
