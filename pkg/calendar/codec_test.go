package calendar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAction_EncodeDecode(t *testing.T) {
	state := State{Month: 11, Year: 2025, Interval: Interval{Min: 2020, Max: 2030}, Locale: "ru"}

	type testcase struct {
		name   string
		action Action
		want   string
	}

	tests := [...]testcase{
		{
			name:   "prev",
			action: Action{WidgetID: "w1", Cmd: CmdPrev, State: state},
			want:   "w1/p/11.2025.2020.2030.ru",
		},
		{
			name:   "select day",
			action: Action{WidgetID: "w1", Cmd: CmdSelectDay, Arg: 31, State: state},
			want:   "w1/d31/11.2025.2020.2030.ru",
		},
		{
			name:   "change year",
			action: Action{WidgetID: "abc", Cmd: CmdChangeYear, Arg: 2027, State: state},
			want:   "abc/y2027/11.2025.2020.2030.ru",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.action.Encode()
			require.Equal(t, tt.want, data)

			got, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, tt.action, got)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	bad := []string{
		"",
		"w1",
		"w1/p",
		"/p/0.2025.2025.2025.en",
		"w1//0.2025.2025.2025.en",
		"w1/z/0.2025.2025.2025.en",
		"w1/dX/0.2025.2025.2025.en",
		"w1/p5/0.2025.2025.2025.en",
		"w1/p/0.2025.2025.en",
		"w1/p/a.2025.2025.2025.en",
		"w1/p/0.2025.2025.2025.en/extra",
		"w1/p/0.2025.2026.2025.en",
		"w1/p/0.0.0.2025.en",
		"w1/p/0.2025.2025.10000.en",
		"w1/n/0.1.-9223372036854775803.9223372036854775807.en",
	}

	for _, data := range bad {
		_, err := Decode(data)
		require.ErrorIs(t, err, ErrBadCallback, data)
	}
}

func TestAction_Apply(t *testing.T) {
	state := State{Month: 0, Year: 2024, Interval: Interval{Min: 2024, Max: 2025}, Locale: "en"}

	cal := Restore(state, at(2024, 1, 1), nil)
	_, err := Action{Cmd: CmdPrev}.Apply(cal)
	require.NoError(t, err)
	require.Equal(t, state, cal.State())

	_, err = Action{Cmd: CmdChangeYear, Arg: 2025}.Apply(cal)
	require.NoError(t, err)
	_, err = Action{Cmd: CmdChangeMonth, Arg: 1}.Apply(cal)
	require.NoError(t, err)

	d, err := Action{Cmd: CmdSelectDay, Arg: 28}.Apply(cal)
	require.NoError(t, err)
	require.Equal(t, Date{Year: 2025, Month: 1, Day: 28}, d)

	_, err = Action{Cmd: CmdSelectDay, Arg: 29}.Apply(cal)
	require.ErrorIs(t, err, ErrDayOutOfRange)
}
