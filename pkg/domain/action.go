package domain

// ActionRequest represents something the driver asks its IO handler to present.
type ActionRequest struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Standard Action Types
const (
	// ActionRenderContent requests the host to display content to the user.
	// Payload: string (markdown or plain text)
	ActionRenderContent = "RENDER_CONTENT"

	// ActionRenderBoard requests the host to draw the rods.
	// Payload: Snapshot
	ActionRenderBoard = "RENDER_BOARD"

	// ActionSystemMessage carries feedback such as a rejected move.
	// Payload: string
	ActionSystemMessage = "SYSTEM_MESSAGE"

	// ActionRequestInput requests the host to collect a line from the user.
	// Payload: InputRequest
	ActionRequestInput = "REQUEST_INPUT"

	// ActionGameOver reports a finished game.
	// Payload: Snapshot
	ActionGameOver = "GAME_OVER"
)

// InputKind defines what the driver is waiting for.
type InputKind string

const (
	InputMenu    InputKind = "menu"
	InputDisks   InputKind = "disks"
	InputMove    InputKind = "move"
	InputConfirm InputKind = "confirm"
)

// InputRequest describes the input needed.
type InputRequest struct {
	Kind   InputKind `json:"kind"`
	Prompt string    `json:"prompt"`
}
