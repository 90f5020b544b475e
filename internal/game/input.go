package game

// InputState is the polled device snapshot the core consumes once per
// frame. Producing it (keyboard, mouse, whatever) is the shell's job;
// the world loop never touches devices.
type InputState struct {
	// Move.Y is forward (+) / back (-), Move.X strafe right (+) /
	// left (-). Components are in [-1, 1].
	Move Vec
	// LookDelta is the turn amount for this frame, radians.
	LookDelta float64

	AttackPressed bool
}
