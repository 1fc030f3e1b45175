package dsl

// chain is the state every property validator embeds: the owning Builder, the
// property's display name, and whether the most recent rule added an error.
// Push, retract and rewrite all act on the Builder's single accumulator, never
// on validator-local copies, so When/WithMessage always see the same source of
// truth the rule wrote to.
type chain[S any] struct {
	b    *Builder[S]
	name string
	last bool
}

func newChain[S any](b *Builder[S], name string) chain[S] {
	return chain[S]{b: b, name: name}
}

// applyMessage records a rule result: a non-empty message is pushed under the
// property, an empty one marks the rule as passed so later When/WithMessage
// calls cannot fabricate an error.
func (c *chain[S]) applyMessage(msg string) {
	if msg == "" {
		c.last = false
		return
	}
	c.b.errs.Add(c.name, msg)
	c.last = true
}

// keepWhen retracts the error the immediately preceding rule added unless
// active is true. Retraction pops exactly one message and only for this
// property; a passed rule leaves nothing to retract.
func (c *chain[S]) keepWhen(active bool) {
	if c.last && !active {
		c.b.errs.RemoveLast(c.name)
		c.last = false
	}
}

// rewriteLast replaces the message the immediately preceding rule added. When
// that rule passed there is no message to replace and the call is a no-op.
func (c *chain[S]) rewriteLast(msg string) {
	if c.last {
		c.b.errs.ReplaceLast(c.name, msg)
	}
}
