package character

// Token identifies one montage the state machine is waiting on. Only the most
// recently issued token completes a transition; older ones are ignored.
type Token uint64

type pending struct {
	tok   Token
	state ActionState
}

func (c *Character) issue(state ActionState) Token {
	c.lastToken++
	c.waiting = pending{tok: c.lastToken, state: state}
	return c.lastToken
}

// Complete is the animation completion edge. It returns the character to
// Unoccupied if tok is the outstanding token and the character is still in
// the state the montage was played for. Draw and sheathe montages are issued
// against Unoccupied and finish through FinishEquip.
func (c *Character) Complete(tok Token) bool {
	if c == nil || tok == 0 || c.waiting.tok != tok || c.action != c.waiting.state {
		return false
	}
	c.waiting = pending{}
	switch c.action {
	case Attacking:
		c.FinishAttack()
	case HitReaction:
		c.FinishHitReaction()
	case Unoccupied:
		c.FinishEquip()
	default:
		return false
	}
	return true
}
