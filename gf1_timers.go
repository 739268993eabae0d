// gf1_timers.go - the two Adlib-style programmable down-counters

package main

// Timer is a one-shot, re-armable countdown. Engine advances it by elapsed
// microseconds on every Mix call rather than through an external scheduler
// collaborator: the engine is already driven synchronously by the mix
// callback, so deriving elapsed time from frames emitted at the current
// base rate keeps the whole core on one cooperative thread.
type Timer struct {
	reload      uint8
	basePeriod  float64 // microseconds, 80 for timer 0, 320 for timer 1
	accumulated float64 // microseconds since last fire

	running  bool
	masked   bool
	raiseIrq bool
	reached  bool
}

func newTimer(basePeriod float64) *Timer {
	t := &Timer{basePeriod: basePeriod}
	t.resetDefault()
	return t
}

func (t *Timer) resetDefault() {
	t.reload = TimerDefaultReload
	t.accumulated = 0
	t.reached = false
}

func (t *Timer) period() float64 {
	return float64(256-int(t.reload)) * t.basePeriod
}

// advance moves the timer forward by elapsedUs microseconds, firing once
// for every full period elapsed while running. irqBit/irq let the timer
// raise the shared status byte and notify the PIC on expiry.
func (t *Timer) advance(elapsedUs float64, irqBit uint8, irq *IrqAggregator) {
	if !t.running {
		return
	}
	period := t.period()
	if period <= 0 {
		return
	}
	t.accumulated += elapsedUs
	for t.accumulated >= period {
		t.accumulated -= period
		t.fire(irqBit, irq)
	}
}

func (t *Timer) fire(irqBit uint8, irq *IrqAggregator) {
	if !t.masked {
		t.reached = true
	}
	if t.raiseIrq {
		irq.setTimerBit(irqBit)
	}
	// running stays true: the countdown simply re-arms, matching a
	// one-shot counter that keeps being re-triggered while armed.
}

// Timers owns both GF1 timers and implements the Adlib-compatible command
// register semantics of ports 0x208/0x209/0x20A.
type Timers struct {
	t0, t1 *Timer
}

func newTimers() *Timers {
	return &Timers{
		t0: newTimer(Timer0BasePeriodUs),
		t1: newTimer(Timer1BasePeriodUs),
	}
}

func (t *Timers) reset() {
	t.t0.resetDefault()
	t.t1.resetDefault()
	t.t0.running, t.t1.running = false, false
}

func (t *Timers) advance(elapsedUs float64, irq *IrqAggregator) {
	t.t0.advance(elapsedUs, IrqStatusTimer0, irq)
	t.t1.advance(elapsedUs, IrqStatusTimer1, irq)
}

// readStatus implements the read side of port 0x208/0x20A.
func (t *Timers) readStatus() uint8 {
	var status uint8
	if t.t0.reached && !t.t0.masked {
		status |= 1 << 6
	}
	if t.t1.reached && !t.t1.masked {
		status |= 1 << 5
	}
	if status&0x60 != 0 {
		status |= 1 << 7
	}
	return status
}

// writeCommand implements the write side of port 0x208: bit 7 resets both
// reached flags (the Adlib "acknowledge IRQ" convention).
func (t *Timers) writeCommand(value uint8) {
	if value&0x80 != 0 {
		t.t0.reached = false
		t.t1.reached = false
	}
}

// writeControl implements port 0x209: start/stop and mask bits for each
// timer, plus the same reset-flags bit as 0x208 for convenience.
func (t *Timers) writeControl(value uint8) {
	if value&0x80 != 0 {
		t.t0.reached = false
		t.t1.reached = false
	}
	t.t0.running = value&0x01 != 0
	t.t1.running = value&0x02 != 0
	t.t0.masked = value&0x10 != 0
	t.t1.masked = value&0x20 != 0
	t.t0.raiseIrq = value&0x01 != 0
	t.t1.raiseIrq = value&0x02 != 0
}
