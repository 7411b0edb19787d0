package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nikmy/meowcal/pkg/errors"
)

var ErrBadCallback = errors.Error("bad calendar callback data")

type Command byte

const (
	CmdIgnore      Command = 'i'
	CmdPrev        Command = 'p'
	CmdNext        Command = 'n'
	CmdChangeMonth Command = 'm'
	CmdChangeYear  Command = 'y'
	CmdSelectDay   Command = 'd'
	CmdBack        Command = 'b'
)

// Action is a decoded button press: which widget, what to do and the
// display state the button was rendered with.
type Action struct {
	WidgetID string
	Cmd      Command
	Arg      int
	State    State
}

// Encode produces "<wid>/<cmd><arg>/<month>.<year>.<min>.<max>.<locale>".
func (a Action) Encode() string {
	var sb strings.Builder

	sb.WriteString(a.WidgetID)
	sb.WriteByte('/')
	sb.WriteByte(byte(a.Cmd))
	if a.Cmd.hasArg() {
		sb.WriteString(strconv.Itoa(a.Arg))
	}
	sb.WriteByte('/')

	s := a.State
	fmt.Fprintf(&sb, "%d.%d.%d.%d.%s", s.Month, s.Year, s.Interval.Min, s.Interval.Max, s.Locale)

	return sb.String()
}

func Decode(data string) (Action, error) {
	parts := strings.Split(data, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return Action{}, errors.Wrapf(ErrBadCallback, "%q", data)
	}

	a := Action{WidgetID: parts[0], Cmd: Command(parts[1][0])}
	if !a.Cmd.valid() {
		return Action{}, errors.Wrapf(ErrBadCallback, "unknown command %q", parts[1])
	}

	if a.Cmd.hasArg() {
		arg, err := strconv.Atoi(parts[1][1:])
		if err != nil {
			return Action{}, errors.Wrapf(ErrBadCallback, "argument %q", parts[1])
		}
		a.Arg = arg
	} else if len(parts[1]) != 1 {
		return Action{}, errors.Wrapf(ErrBadCallback, "unexpected argument %q", parts[1])
	}

	state, err := decodeState(parts[2])
	if err != nil {
		return Action{}, err
	}
	a.State = state

	return a, nil
}

func decodeState(raw string) (State, error) {
	fields := strings.Split(raw, ".")
	if len(fields) != 5 {
		return State{}, errors.Wrapf(ErrBadCallback, "state %q", raw)
	}

	var nums [4]int
	for i := range nums {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return State{}, errors.Wrapf(ErrBadCallback, "state field %q", fields[i])
		}
		nums[i] = n
	}

	s := State{
		Month:    nums[0],
		Year:     nums[1],
		Interval: Interval{Min: nums[2], Max: nums[3]},
		Locale:   fields[4],
	}
	if !s.Interval.Valid() {
		return State{}, errors.Wrapf(ErrBadCallback, "interval [%d, %d]", s.Interval.Min, s.Interval.Max)
	}

	return s, nil
}

func (c Command) hasArg() bool {
	switch c {
	case CmdChangeMonth, CmdChangeYear, CmdSelectDay:
		return true
	default:
		return false
	}
}

func (c Command) valid() bool {
	switch c {
	case CmdIgnore, CmdPrev, CmdNext, CmdChangeMonth, CmdChangeYear, CmdSelectDay, CmdBack:
		return true
	default:
		return false
	}
}

// Apply runs the action against cal. The returned date is non-zero only for
// day selection.
func (a Action) Apply(cal *Calendar) (Date, error) {
	switch a.Cmd {
	case CmdPrev:
		cal.PrevMonth()
	case CmdNext:
		cal.NextMonth()
	case CmdChangeMonth:
		cal.ChangeMonth(a.Arg)
	case CmdChangeYear:
		cal.ChangeYear(a.Arg)
	case CmdSelectDay:
		return cal.Select(a.Arg)
	}
	return Date{}, nil
}
