package cnf

// ema is an exponential moving average, used here to track the running
// average glue of learned clauses for telemetry.
type ema struct {
	decay float64
	value float64
	init  bool
}

func newEMA(decay float64) ema {
	return ema{decay: decay}
}

func (e *ema) add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
	} else {
		e.value = e.decay*e.value + x*(1-e.decay)
	}
}

func (e *ema) val() float64 {
	return e.value
}
