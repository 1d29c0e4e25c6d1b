package neongrid

// A timed fade: ramps linearly from 0 to 1 during fadeIn ticks,
// holds 1 for duration ticks and ramps back to 0 during fadeOut
// ticks. The surface reveal on load is one of these with an
// unbounded duration.
type fadeChannel struct {
	elapsed  TicksDuration
	fadeIn   TicksDuration
	duration TicksDuration
	fadeOut  TicksDuration
}

func (self *fadeChannel) Trigger(fadeIn, duration, fadeOut TicksDuration) {
	self.elapsed = 0
	self.fadeIn = fadeIn
	self.duration = duration
	self.fadeOut = fadeOut
}

func (self *fadeChannel) IsFadingIn() bool {
	return self.elapsed < self.fadeIn
}

func (self *fadeChannel) IsFadingOut() bool {
	toFadeOut := self.fadeIn + self.duration
	return self.duration != maxUint32 && self.elapsed >= toFadeOut && self.elapsed < toFadeOut+self.fadeOut
}

// Reports whether the channel still has work to do. A channel with
// an unbounded duration stays active once it reaches full activity.
func (self *fadeChannel) IsActive() bool {
	if self.fadeIn == 0 && self.duration == 0 && self.fadeOut == 0 {
		return false
	}
	if self.duration == maxUint32 {
		return true
	}
	return self.elapsed < self.fadeIn+self.duration+self.fadeOut
}

func (self *fadeChannel) Update() {
	if !self.IsActive() {
		return
	}
	if self.duration == maxUint32 && self.elapsed >= self.fadeIn {
		return // holding
	}
	self.elapsed += 1
}

// Returns the current fade level in [0, 1].
func (self *fadeChannel) Activity() float64 {
	if !self.IsActive() && self.elapsed == 0 {
		return 1 // never triggered
	}
	if self.elapsed < self.fadeIn {
		return float64(self.elapsed) / float64(self.fadeIn)
	}
	elapsed := self.elapsed - self.fadeIn
	if self.duration == maxUint32 || elapsed < self.duration {
		return 1.0
	}
	elapsed -= self.duration
	if elapsed >= self.fadeOut {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(self.fadeOut)
}
