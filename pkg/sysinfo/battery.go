package sysinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/distatus/battery"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
)

// siBatteryState is one battery reading normalised across sources.
type siBatteryState struct {
	Percent  int
	Charging bool
}

// Battery reports the charge of the first battery as (level, "45%"). The
// level selects the icon: tenths of charge, or facts.Charging while plugged
// in.
type Battery struct {
	opts Options

	// read is replaced in tests.
	read func(ctx context.Context) (siBatteryState, error)
}

// NewBattery returns the battery adapter. On Android it reads
// termux-battery-status; elsewhere it uses the OS power APIs.
func NewBattery(opts Options) *Battery {
	b := &Battery{opts: opts, read: siReadBattery}
	if IsAndroid() {
		b.read = siReadTermuxBattery
	}
	return b
}

func (a *Battery) Name() string { return facts.Battery }

func (a *Battery) Collect(ctx context.Context) facts.Value {
	st, err := a.read(ctx)
	if err != nil {
		a.opts.logger().Debug("battery read failed", "err", err)
		return facts.Null
	}
	return facts.Indexed(siBatteryIndex(st), fmt.Sprintf("%d%%", st.Percent))
}

// siBatteryIndex maps a reading to an icon variant: Charging while plugged
// in, otherwise percent/10 - 1 clamped to [0, 9].
func siBatteryIndex(st siBatteryState) int {
	if st.Charging {
		return facts.Charging
	}
	idx := st.Percent/10 - 1
	return max(0, min(idx, facts.BatteryLevels-1))
}

var errNoBattery = errors.New("no battery")

// siReadBattery reads the first battery that reports a capacity.
func siReadBattery(context.Context) (siBatteryState, error) {
	bats, err := battery.GetAll()
	if len(bats) == 0 {
		if err != nil {
			return siBatteryState{}, err
		}
		return siBatteryState{}, errNoBattery
	}
	for _, b := range bats {
		if b == nil || b.Full <= 0 {
			continue
		}
		pct := int(math.Round(b.Current / b.Full * 100))
		return siBatteryState{
			Percent:  max(0, min(pct, 100)),
			Charging: b.State.Raw == battery.Charging,
		}, nil
	}
	return siBatteryState{}, errNoBattery
}

// siTermuxBattery is the subset of termux-battery-status output we use.
type siTermuxBattery struct {
	Percentage int    `json:"percentage"`
	Status     string `json:"status"`
}

func siReadTermuxBattery(ctx context.Context) (siBatteryState, error) {
	out, err := siRun(ctx, "termux-battery-status")
	if err != nil {
		return siBatteryState{}, err
	}
	return siParseTermuxBattery(out)
}

func siParseTermuxBattery(out string) (siBatteryState, error) {
	var tb siTermuxBattery
	if err := json.Unmarshal([]byte(out), &tb); err != nil {
		return siBatteryState{}, fmt.Errorf("parse termux-battery-status: %w", err)
	}
	return siBatteryState{
		Percent:  tb.Percentage,
		Charging: tb.Status == "CHARGING",
	}, nil
}
