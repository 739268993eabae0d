package main

import "testing"

func TestTimerPeriodDefault(t *testing.T) {
	t0 := newTimer(Timer0BasePeriodUs)
	want := float64(256-int(TimerDefaultReload)) * Timer0BasePeriodUs
	if got := t0.period(); got != want {
		t.Fatalf("default timer0 period = %v, want %v", got, want)
	}
}

func TestTimerFiresAfterElapsedPeriod(t *testing.T) {
	irq := newIrqAggregator()
	irq.setActiveVoices(MinActiveVoices)

	t0 := newTimer(Timer0BasePeriodUs)
	t0.reload = 0
	t0.running = true
	t0.raiseIrq = true

	period := t0.period()
	t0.advance(period, IrqStatusTimer0, irq)

	if !t0.reached {
		t.Fatalf("timer should have fired after one full period")
	}
	if irq.irqStatus&IrqStatusTimer0 == 0 {
		t.Fatalf("irq_status timer0 bit should be set")
	}
}

func TestTimerMaskedSuppressesReached(t *testing.T) {
	irq := newIrqAggregator()
	t0 := newTimer(Timer0BasePeriodUs)
	t0.reload = 0
	t0.running = true
	t0.masked = true

	t0.advance(t0.period(), IrqStatusTimer0, irq)

	if t0.reached {
		t.Fatalf("masked timer should not set reached")
	}
}

func TestTimersWriteControlStartStopMask(t *testing.T) {
	timers := newTimers()
	timers.writeControl(0x01 | 0x20) // start timer0, mask timer1

	if !timers.t0.running {
		t.Fatalf("bit0 should start timer0")
	}
	if timers.t1.running {
		t.Fatalf("timer1 should remain stopped")
	}
	if !timers.t1.masked {
		t.Fatalf("bit5 should mask timer1")
	}
}

func TestTimersWriteCommandResetsReachedFlags(t *testing.T) {
	timers := newTimers()
	timers.t0.reached = true
	timers.t1.reached = true

	timers.writeCommand(0x80)

	if timers.t0.reached || timers.t1.reached {
		t.Fatalf("bit7 on 0x208 should clear both reached flags")
	}
}

func TestTimersReadStatusComposite(t *testing.T) {
	timers := newTimers()
	timers.t0.reached = true

	status := timers.readStatus()
	if status&(1<<6) == 0 {
		t.Fatalf("bit6 should reflect timer0 reached")
	}
	if status&(1<<7) == 0 {
		t.Fatalf("bit7 should be the composite OR of timer bits")
	}
}

func TestTimersResetRestoresDefaults(t *testing.T) {
	timers := newTimers()
	timers.t0.running = true
	timers.t0.reload = 0x10

	timers.reset()

	if timers.t0.running {
		t.Fatalf("reset should stop timer0")
	}
	if timers.t0.reload != TimerDefaultReload {
		t.Fatalf("reset should restore default reload, got 0x%02X", timers.t0.reload)
	}
}
