package obj

// motionState is the vertical motion phase of the player. The active state
// is switched by setState from the jump step of Move.
type motionState interface {
	Name() string
	Enter(p *Player)
}

type groundedState struct{}

func (groundedState) Name() string    { return "grounded" }
func (groundedState) Enter(p *Player) {}

// ascendingState covers the controlled part of a jump, while the jump
// curve overrides gravity.
type ascendingState struct{}

func (ascendingState) Name() string { return "ascending" }
func (ascendingState) Enter(p *Player) {
	p.anim = AnimJump
}

// fallingState is any airborne time outside a controlled ascent. The
// height it starts at is what a landing measures fall damage against.
type fallingState struct{}

func (fallingState) Name() string { return "falling" }
func (fallingState) Enter(p *Player) {
	p.fallStartY = p.position.Y
}

// singletons for each state to avoid allocating on every transition
var (
	stateGrounded  motionState = groundedState{}
	stateAscending motionState = ascendingState{}
	stateFalling   motionState = fallingState{}
)

func (p *Player) setState(s motionState) {
	if p.state == s {
		return
	}
	p.state = s
	p.state.Enter(p)
}

// State returns the name of the current motion state: "grounded",
// "ascending" or "falling".
func (p *Player) State() string {
	if p.state == nil {
		return ""
	}
	return p.state.Name()
}

// land resolves a fall that ended on the ground, killing the player if it
// was too long.
func (p *Player) land() {
	distance := p.position.Y - p.fallStartY
	p.setState(stateGrounded)
	if distance > p.spec.SafeFallDistance {
		p.OnKilled(nil)
	}
}
